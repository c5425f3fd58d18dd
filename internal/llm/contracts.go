package llm

import "context"

// SummaryRequest carries the extracted report text plus light context for the prompt.
type SummaryRequest struct {
	ReportText string
	ReportName string
	FileType   string
}

// SummaryClient is the interface the analysis pipeline depends on. The returned
// string is the model's reply text verbatim; parsing and field mapping happen
// downstream so a malformed reply never fails the call.
type SummaryClient interface {
	Summarize(ctx context.Context, req SummaryRequest) (string, error)
}
