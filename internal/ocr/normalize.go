package ocr

import (
	"regexp"
	"strings"
)

var (
	reBoxNoise  = regexp.MustCompile(`(?m)^[|_\-=~]{3,}\s*$`)
	reBlankRuns = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans obvious OCR line noise and collapses blank runs. It
// deliberately does NOT trim the result to empty: an all-whitespace
// extraction must remain visible to the caller, which treats it as a
// failed extraction before spending an AI call.
func Normalize(txt string) string {
	txt = strings.ReplaceAll(txt, "\r\n", "\n")
	txt = reBoxNoise.ReplaceAllString(txt, "")
	txt = reBlankRuns.ReplaceAllString(txt, "\n\n")
	return strings.TrimRight(txt, "\n")
}

// IsBlank reports whether extracted text is empty or whitespace-only.
func IsBlank(txt string) bool {
	return strings.TrimSpace(txt) == ""
}
