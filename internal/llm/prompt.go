package llm

import "strings"

// BuildInsightPrompt composes the analysis prompt. The report text is fenced so
// the model does not mistake report content for instructions, and is embedded
// verbatim; there is no token or length guard.
func BuildInsightPrompt(req SummaryRequest) string {
	text := strings.TrimSpace(req.ReportText)

	parts := []string{
		`You are "HealthMate AI", a professional health assistant.`,
		"",
		"Analyze this medical report text and return ONLY valid JSON with these keys:",
		"englishSummary, urduSummary, doctorQuestions, recommendedFoods, foodsToAvoid, homeRemedies, riskLevel.",
		"",
		"Guidelines:",
		"- Use short, clear sentences (max 2 lines each).",
		"- Keep doctorQuestions concise and actionable (3-5 items only).",
		"- Avoid generic or repeated questions.",
		"- Urdu should be in Roman Urdu.",
		"- Lists should be arrays.",
		"- No markdown, no explanations, only valid JSON.",
	}
	if name := strings.TrimSpace(req.ReportName); name != "" {
		parts = append(parts, "", "Report name: "+name)
	}
	parts = append(parts,
		"",
		"Report Text:",
		`"""`,
		text,
		`"""`,
	)
	return strings.Join(parts, "\n")
}
