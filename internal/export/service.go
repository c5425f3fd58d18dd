package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/healthmate/healthmate-backend/internal/repository"
)

// Service is a tiny façade over the vitals repository that produces XLSX
// bytes for download.
type Service struct {
	vitalsRepo repository.VitalsRepository
	logger     *slog.Logger
}

func NewService(vitalsRepo repository.VitalsRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{vitalsRepo: vitalsRepo, logger: logger}
}

// ExportVitalsXLSX returns an XLSX workbook (as bytes) with the user's full
// vitals history, newest first, matching the history endpoint's ordering.
func (s *Service) ExportVitalsXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()

	entries, err := s.vitalsRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query vitals: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Vitals"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Date",
		"Blood Pressure",
		"Sugar (mg/dL)",
		"Weight (kg)",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, v := range entries {
		write := func(col int, val any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, val)
		}

		write(1, v.RecordedAt.Format("2006-01-02"))
		write(2, v.BP)
		if v.Sugar != nil {
			write(3, *v.Sugar)
		}
		if v.Weight != nil {
			write(4, *v.Weight)
		}
		write(5, v.Notes)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 16)
	_ = f.SetColWidth(sheet, "E", "E", 40)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.vitals.ok",
		"user_id", userID,
		"rows", len(entries),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
