package llm

import (
	"strings"
	"testing"
)

func TestBuildInsightPrompt(t *testing.T) {
	p := BuildInsightPrompt(SummaryRequest{
		ReportText: "Hemoglobin 10.2 g/dL",
		ReportName: "CBC Report",
	})

	for _, want := range []string{
		"englishSummary", "urduSummary", "doctorQuestions",
		"recommendedFoods", "foodsToAvoid", "homeRemedies", "riskLevel",
		"Roman Urdu",
		"Report name: CBC Report",
		"Hemoglobin 10.2 g/dL",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildInsightPromptEmbedsLongTextVerbatim(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("Hemoglobin 10.2 g/dL (خون ٹیسٹ)\n", 2000))
	p := BuildInsightPrompt(SummaryRequest{ReportText: long})
	if !strings.Contains(p, long) {
		t.Fatalf("long report text must be embedded unmodified")
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildInsightJSONSchema()

	good := []byte(`{"englishSummary":"ok","doctorQuestions":["q1"]}`)
	if err := ValidateJSONAgainstSchema(schema, good); err != nil {
		t.Fatalf("valid doc rejected: %v", err)
	}

	bad := []byte(`{"doctorQuestions":"not a list"}`)
	if err := ValidateJSONAgainstSchema(schema, bad); err == nil {
		t.Fatalf("invalid doc accepted")
	}
}
