package extract

import (
	"context"
	"time"

	"github.com/healthmate/healthmate-backend/constants"
)

// TextExtractor is stage 1 of the analysis pipeline: bytes -> text.
// The declared kind is carried from upload time, never re-sniffed.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, kind constants.FileType) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType constants.FileType
	Method     string // "pdf-text" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
}
