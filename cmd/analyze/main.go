package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/healthmate/healthmate-backend/internal/common"
	"github.com/healthmate/healthmate-backend/internal/extract"
	"github.com/healthmate/healthmate-backend/internal/llm/gemini"
	"github.com/healthmate/healthmate-backend/internal/ocr"
	"github.com/healthmate/healthmate-backend/internal/pipeline"
	"github.com/healthmate/healthmate-backend/internal/repository"
	"github.com/healthmate/healthmate-backend/internal/storage"
)

// analyze runs the full report analysis for one stored report, outside the
// HTTP server. Useful for re-processing and for debugging extraction.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "analyze <report-id-uuid> <user-id-uuid>")
		os.Exit(2)
	}
	reportID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid report id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	userID, err := uuid.Parse(os.Args[2])
	if err != nil {
		logger.Error("invalid user id (must be UUID)", "arg", os.Args[2], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(pool, logger)

	store, err := storage.NewGCSStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("init object store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	extractor := extract.NewOCRExtractor(ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger))

	summarizer := gemini.NewClient(gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	analyzer := pipeline.NewAnalyzer(
		repository.NewReportRepository(db, logger),
		repository.NewInsightRepository(db, logger),
		store, extractor, summarizer, logger,
	)

	ins, err := analyzer.Analyze(ctx, reportID, userID)
	if err != nil {
		logger.Error("analysis failed", "report_id", reportID, "error", err)
		os.Exit(1)
	}
	logger.Info("analysis complete",
		"insight_id", ins.ID,
		"english_summary", ins.EnglishSummary,
		"questions", len(ins.DoctorQuestions),
	)
}
