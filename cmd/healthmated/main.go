package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/healthmate/healthmate-backend/internal/auth"
	"github.com/healthmate/healthmate-backend/internal/common"
	"github.com/healthmate/healthmate-backend/internal/export"
	"github.com/healthmate/healthmate-backend/internal/extract"
	"github.com/healthmate/healthmate-backend/internal/llm/gemini"
	"github.com/healthmate/healthmate-backend/internal/ocr"
	"github.com/healthmate/healthmate-backend/internal/pipeline"
	"github.com/healthmate/healthmate-backend/internal/repository"
	"github.com/healthmate/healthmate-backend/internal/server"
	"github.com/healthmate/healthmate-backend/internal/storage"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()
	log := zl.Sugar()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		log.Fatalw("failed to open database", "error", err)
	}
	defer repository.Close(pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		log.Fatalw("database ping failed", "error", err)
	}
	if err := repository.Migrate(db, logger); err != nil {
		log.Fatalw("schema migration failed", "error", err)
	}

	store, err := storage.NewGCSStore(ctx, cfg.Storage, logger)
	if err != nil {
		log.Fatalw("failed to init object store", "error", err)
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

	users := repository.NewUserRepository(db, logger)
	reports := repository.NewReportRepository(db, logger)
	insights := repository.NewInsightRepository(db, logger)
	vitals := repository.NewVitalsRepository(db, logger)
	family := repository.NewFamilyRepository(db, logger)

	analyzer := pipeline.NewAnalyzer(reports, insights, store, extractor, summarizer, logger)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := server.NewRouter(server.RouterConfig{
		CORSOrigin: cfg.Server.CORSOrigin,
		HealthCheck: func(ctx context.Context) error {
			return repository.HealthCheck(ctx, pool, 2*time.Second, logger)
		},
		AuthMiddleware: server.NewAuthMiddleware(tokens, logger),
		UserHandler:    server.NewUserHandler(users, tokens, logger),
		FileHandler:    server.NewFileHandler(reports, store, analyzer, logger),
		InsightHandler: server.NewInsightHandler(insights, logger),
		VitalsHandler:  server.NewVitalsHandler(vitals, export.NewService(vitals, logger), logger),
		FamilyHandler:  server.NewFamilyHandler(family, logger),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("http server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
	log.Infow("shutdown complete")
}
