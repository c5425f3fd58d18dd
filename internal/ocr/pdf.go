package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthmate/healthmate-backend/constants"
	"github.com/healthmate/healthmate-backend/internal/common"
)

// extractPDF concatenates the document's embedded text runs in page
// order. A byte stream that is not a valid PDF container surfaces as an
// extraction failure (user-visible 400), never a crash.
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: []string{string(errb)}},
			fmt.Errorf("%w: parse pdf: %v", common.ErrExtractionFailed, err)
	}
	text := Normalize(string(out))
	// pdftotext emits form-feed page separators
	pages := 1 + strings.Count(string(out), "\f")
	return ExtractionResult{
		Text:       text,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
	}, nil
}
