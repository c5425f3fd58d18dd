package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/healthmate/healthmate-backend/constants"
	"github.com/healthmate/healthmate-backend/internal/common"
	"github.com/healthmate/healthmate-backend/internal/entity"
	"github.com/healthmate/healthmate-backend/internal/extract"
	"github.com/healthmate/healthmate-backend/internal/insight"
	"github.com/healthmate/healthmate-backend/internal/llm"
	"github.com/healthmate/healthmate-backend/internal/ocr"
	"github.com/healthmate/healthmate-backend/internal/repository"
	"github.com/healthmate/healthmate-backend/internal/storage"
)

// Analyzer runs the full report analysis: fetch the stored document, extract
// its text, ask the model for a summary, normalize, persist.
type Analyzer struct {
	Reports   repository.ReportRepository
	Insights  repository.InsightRepository
	Store     storage.ObjectStore
	Extractor extract.TextExtractor
	Summarer  llm.SummaryClient
	Logger    *slog.Logger
}

func NewAnalyzer(reports repository.ReportRepository, insights repository.InsightRepository, store storage.ObjectStore, tx extract.TextExtractor, sc llm.SummaryClient, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		Reports:   reports,
		Insights:  insights,
		Store:     store,
		Extractor: tx,
		Summarer:  sc,
		Logger:    logger,
	}
}

// Analyze is synchronous and idempotency-free: each call that reaches the
// model produces a fresh Insight row. Failure at any stage persists nothing.
func (a *Analyzer) Analyze(ctx context.Context, reportID, userID uuid.UUID) (*entity.Insight, error) {
	start := time.Now()
	a.Logger.Info("analyze.start", "report_id", reportID, "user_id", userID)

	rep, err := a.Reports.GetForUser(ctx, reportID, userID)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	rc, err := a.Store.Download(ctx, rep.StorageKey)
	if err != nil {
		a.Logger.Error("analyze.download_failed", "report_id", reportID, "key", rep.StorageKey, "error", err)
		return nil, fmt.Errorf("download report object: %w", err)
	}
	data, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		a.Logger.Error("analyze.download_read_failed", "report_id", reportID, "error", err)
		return nil, fmt.Errorf("%w: read report object: %v", common.ErrUpstreamUnavailable, err)
	}

	res, err := a.Extractor.Extract(ctx, data, constants.FileType(rep.FileType))
	if err != nil {
		a.Logger.Error("analyze.extract_failed", "report_id", reportID, "error", err)
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if ocr.IsBlank(res.Text) {
		a.Logger.Warn("analyze.blank_text", "report_id", reportID, "method", res.Method, "pages", res.Pages)
		return nil, fmt.Errorf("%w: no readable text in document", common.ErrExtractionFailed)
	}

	reply, err := a.Summarer.Summarize(ctx, llm.SummaryRequest{
		ReportText: res.Text,
		ReportName: rep.ReportName,
		FileType:   rep.FileType,
	})
	if err != nil {
		a.Logger.Error("analyze.summarize_failed", "report_id", reportID, "error", err)
		return nil, fmt.Errorf("summarize: %w", err)
	}

	fields := insight.NormalizeReply(reply)

	ins := &entity.Insight{
		ReportID:        rep.ID,
		UserID:          rep.UserID,
		EnglishSummary:  fields.EnglishSummary,
		UrduSummary:     fields.UrduSummary,
		DoctorQuestions: fields.DoctorQuestions,
		FoodSuggestions: fields.FoodSuggestions,
		HomeRemedies:    fields.HomeRemedies,
		Disclaimer:      fields.Disclaimer,
		RawResponse:     rawResponseJSON(reply),
	}
	if err := a.Insights.Create(ctx, ins); err != nil {
		return nil, fmt.Errorf("persist insight: %w", err)
	}
	ins.Report = rep

	a.Logger.Info("analyze.ok",
		"report_id", reportID,
		"insight_id", ins.ID,
		"method", res.Method,
		"pages", res.Pages,
		"text_len", len(res.Text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ins, nil
}

// rawResponseJSON stores the verbatim reply. Valid JSON is kept as-is so it
// stays queryable; anything else is wrapped as a JSON string.
func rawResponseJSON(reply string) datatypes.JSON {
	trimmed := insight.TrimFences(reply)
	if json.Valid([]byte(trimmed)) {
		return datatypes.JSON(trimmed)
	}
	b, _ := json.Marshal(reply)
	return datatypes.JSON(b)
}
