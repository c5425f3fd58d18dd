package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/healthmate/healthmate-backend/constants"
	"github.com/healthmate/healthmate-backend/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string

	WorkDir string // scratch dir for staged bytes, default os.TempDir()
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType constants.FileType
	Method     string // "pdf-text" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
}

// Extractor turns report bytes into plain text. The declared kind comes
// from the upload's media type and is never re-sniffed here.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = os.TempDir()
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// Extract stages the bytes to a scratch file and picks a strategy from
// the declared kind. An unrecognized kind is a hard error, not empty
// text.
func (e *Extractor) Extract(ctx context.Context, data []byte, kind constants.FileType) (ExtractionResult, error) {
	start := time.Now()
	e.logger.Debug("ocr.extract.start", "kind", kind, "bytes", len(data))

	switch kind {
	case constants.PDF:
		path, cleanup, err := e.stage(data, "*.pdf")
		if err != nil {
			return ExtractionResult{}, err
		}
		defer cleanup()
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.Image:
		path, cleanup, err := e.stage(data, "*.png")
		if err != nil {
			return ExtractionResult{}, err
		}
		defer cleanup()
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("ocr.extract.unsupported_kind", "kind", kind)
		return ExtractionResult{}, fmt.Errorf("%w: no extraction path for kind %q", common.ErrExtractionFailed, kind)
	}
}

func (e *Extractor) stage(data []byte, pattern string) (string, func(), error) {
	f, err := os.CreateTemp(e.cfg.WorkDir, "hm-report-"+pattern)
	if err != nil {
		return "", nil, fmt.Errorf("stage report bytes: %w", err)
	}
	path := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, fmt.Errorf("stage report bytes: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, fmt.Errorf("stage report bytes: %w", err)
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil {
			e.logger.Warn("ocr.stage.cleanup_failed", "path", filepath.Base(path), "error", err)
		}
	}
	return path, cleanup, nil
}
