package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/healthmate/healthmate-backend/internal/entity"
)

type stubVitals struct {
	entries []entity.VitalsEntry
}

func (s *stubVitals) Create(ctx context.Context, v *entity.VitalsEntry) error { return nil }

func (s *stubVitals) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.VitalsEntry, error) {
	return s.entries, nil
}

func TestExportVitalsXLSX(t *testing.T) {
	sugar := 98.5
	weight := 71.0
	repo := &stubVitals{entries: []entity.VitalsEntry{
		{
			BP:         "120/80",
			Sugar:      &sugar,
			Weight:     &weight,
			Notes:      "fasting",
			RecordedAt: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			BP:         "130/85",
			RecordedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportVitalsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Vitals")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: got=%d want=3 (header + 2)", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][1] != "Blood Pressure" {
		t.Fatalf("header wrong: %v", rows[0])
	}
	if rows[1][0] != "2026-03-14" || rows[1][1] != "120/80" {
		t.Fatalf("first row wrong: %v", rows[1])
	}
	if rows[1][4] != "fasting" {
		t.Fatalf("notes wrong: %v", rows[1])
	}
	// Sparse vitals leave cells empty rather than writing zeros.
	if len(rows[2]) > 2 && rows[2][2] != "" {
		t.Fatalf("missing sugar should stay empty: %v", rows[2])
	}
}

func TestExportVitalsXLSXEmptyHistory(t *testing.T) {
	svc := NewService(&stubVitals{}, nil)
	data, err := svc.ExportVitalsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Vitals")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got=%d want=1", len(rows))
	}
}
