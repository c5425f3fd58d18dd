package extract

import (
	"context"

	"github.com/healthmate/healthmate-backend/constants"
	"github.com/healthmate/healthmate-backend/internal/ocr"
)

// OCRExtractor adapts the ocr package to the TextExtractor contract.
type OCRExtractor struct {
	inner *ocr.Extractor
}

func NewOCRExtractor(inner *ocr.Extractor) *OCRExtractor {
	return &OCRExtractor{inner: inner}
}

func (e *OCRExtractor) Extract(ctx context.Context, data []byte, kind constants.FileType) (TextExtractionResult, error) {
	res, err := e.inner.Extract(ctx, data, kind)
	if err != nil {
		return TextExtractionResult{}, err
	}
	return TextExtractionResult{
		Text:       res.Text,
		Pages:      res.Pages,
		SourceType: res.SourceType,
		Method:     res.Method,
		Language:   res.Language,
		Duration:   res.Duration,
		Warnings:   res.Warnings,
	}, nil
}
