package insight

import (
	"reflect"
	"testing"
)

func TestNormalizeWellFormedReply(t *testing.T) {
	text := `{
		"englishSummary": "Hemoglobin is low.",
		"urduSummary": "Khoon ki kami hai.",
		"doctorQuestions": ["Why is hemoglobin low?", "Do I need iron supplements?"],
		"recommendedFoods": ["Spinach", "Lentils"],
		"homeRemedies": ["Dates with milk"],
		"riskLevel": "medium"
	}`
	got := NormalizeReply(text)

	if got.EnglishSummary != "Hemoglobin is low." {
		t.Fatalf("english: got=%q", got.EnglishSummary)
	}
	if got.UrduSummary != "Khoon ki kami hai." {
		t.Fatalf("urdu: got=%q", got.UrduSummary)
	}
	if want := []string{"Why is hemoglobin low?", "Do I need iron supplements?"}; !reflect.DeepEqual(got.DoctorQuestions, want) {
		t.Fatalf("questions: got=%v want=%v", got.DoctorQuestions, want)
	}
	if want := []string{"Spinach", "Lentils"}; !reflect.DeepEqual(got.FoodSuggestions, want) {
		t.Fatalf("foods: got=%v want=%v", got.FoodSuggestions, want)
	}
	if want := []string{"Dates with milk"}; !reflect.DeepEqual(got.HomeRemedies, want) {
		t.Fatalf("remedies: got=%v want=%v", got.HomeRemedies, want)
	}
	if got.Disclaimer != DefaultDisclaimer {
		t.Fatalf("disclaimer: got=%q", got.Disclaimer)
	}
}

func TestNormalizeAliasFallbacks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Fields
	}{
		{
			name: "summary and questions aliases",
			in:   `{"summary":"All values normal.","questions":["Any follow-up needed?"]}`,
			want: Fields{
				EnglishSummary:  "All values normal.",
				UrduSummary:     DefaultUrduSummary,
				DoctorQuestions: []string{"Any follow-up needed?"},
				FoodSuggestions: []string{},
				HomeRemedies:    []string{},
				Disclaimer:      DefaultDisclaimer,
			},
		},
		{
			name: "text and romanUrduSummary aliases",
			in:   `{"text":"Minor anemia.","romanUrduSummary":"Halki khoon ki kami."}`,
			want: Fields{
				EnglishSummary:  "Minor anemia.",
				UrduSummary:     "Halki khoon ki kami.",
				DoctorQuestions: []string{},
				FoodSuggestions: []string{},
				HomeRemedies:    []string{},
				Disclaimer:      DefaultDisclaimer,
			},
		},
		{
			name: "recommended and remedies aliases",
			in:   `{"englishSummary":"ok","recommended":["Eggs"],"remedies":["Honey water"]}`,
			want: Fields{
				EnglishSummary:  "ok",
				UrduSummary:     DefaultUrduSummary,
				DoctorQuestions: []string{},
				FoodSuggestions: []string{"Eggs"},
				HomeRemedies:    []string{"Honey water"},
				Disclaimer:      DefaultDisclaimer,
			},
		},
		{
			name: "primary key wins over alias",
			in:   `{"englishSummary":"primary","summary":"secondary"}`,
			want: Fields{
				EnglishSummary:  "primary",
				UrduSummary:     DefaultUrduSummary,
				DoctorQuestions: []string{},
				FoodSuggestions: []string{},
				HomeRemedies:    []string{},
				Disclaimer:      DefaultDisclaimer,
			},
		},
		{
			name: "empty primary falls through to alias",
			in:   `{"englishSummary":"","summary":"fallback"}`,
			want: Fields{
				EnglishSummary:  "fallback",
				UrduSummary:     DefaultUrduSummary,
				DoctorQuestions: []string{},
				FoodSuggestions: []string{},
				HomeRemedies:    []string{},
				Disclaimer:      DefaultDisclaimer,
			},
		},
		{
			name: "custom disclaimer kept",
			in:   `{"englishSummary":"ok","disclaimer":"Sirf maloomat ke liye."}`,
			want: Fields{
				EnglishSummary:  "ok",
				UrduSummary:     DefaultUrduSummary,
				DoctorQuestions: []string{},
				FoodSuggestions: []string{},
				HomeRemedies:    []string{},
				Disclaimer:      "Sirf maloomat ke liye.",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeReply(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got=%+v want=%+v", got, tc.want)
			}
		})
	}
}

func TestNormalizeNonJSONReply(t *testing.T) {
	got := NormalizeReply("The report shows mild anemia with low hemoglobin.")

	if got.EnglishSummary != "The report shows mild anemia with low hemoglobin." {
		t.Fatalf("english: got=%q", got.EnglishSummary)
	}
	if got.UrduSummary != DefaultUrduSummary {
		t.Fatalf("urdu: got=%q", got.UrduSummary)
	}
	if len(got.DoctorQuestions) != 0 || len(got.FoodSuggestions) != 0 || len(got.HomeRemedies) != 0 {
		t.Fatalf("lists should be empty: %+v", got)
	}
	if got.Disclaimer != DefaultDisclaimer {
		t.Fatalf("disclaimer: got=%q", got.Disclaimer)
	}
}

func TestNormalizeEmptyAndScalarInputs(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty string", ""},
		{"whitespace", "   \n\t  "},
		{"empty object", "{}"},
		{"json array", `["not","an","object"]`},
		{"json null", "null"},
		{"bare number", "42"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeReply(tc.in)
			if got.EnglishSummary == "" {
				t.Fatalf("english summary must never be empty")
			}
			if got.UrduSummary == "" || got.Disclaimer == "" {
				t.Fatalf("string fields must never be empty: %+v", got)
			}
			if got.DoctorQuestions == nil || got.FoodSuggestions == nil || got.HomeRemedies == nil {
				t.Fatalf("lists must never be nil: %+v", got)
			}
		})
	}

	got := NormalizeReply("")
	if got.EnglishSummary != DefaultEnglishSummary {
		t.Fatalf("empty reply english: got=%q want=%q", got.EnglishSummary, DefaultEnglishSummary)
	}
	// A bare scalar is not an object, so its text becomes the summary.
	got = NormalizeReply("42")
	if got.EnglishSummary != "42" {
		t.Fatalf("scalar reply english: got=%q", got.EnglishSummary)
	}
}

func TestNormalizeScalarToListCoercion(t *testing.T) {
	got := NormalizeReply(`{
		"englishSummary": "ok",
		"doctorQuestions": "Is this serious?",
		"recommendedFoods": 7,
		"homeRemedies": ["Rest", 8, true, null, ""]
	}`)

	if want := []string{"Is this serious?"}; !reflect.DeepEqual(got.DoctorQuestions, want) {
		t.Fatalf("questions: got=%v want=%v", got.DoctorQuestions, want)
	}
	if want := []string{"7"}; !reflect.DeepEqual(got.FoodSuggestions, want) {
		t.Fatalf("foods: got=%v want=%v", got.FoodSuggestions, want)
	}
	if want := []string{"Rest", "8", "true"}; !reflect.DeepEqual(got.HomeRemedies, want) {
		t.Fatalf("remedies: got=%v want=%v", got.HomeRemedies, want)
	}
}

func TestNormalizeExplicitEmptyListStopsAliasChain(t *testing.T) {
	got := NormalizeReply(`{"englishSummary":"ok","recommendedFoods":[],"foodSuggestions":["should not be used"]}`)
	if len(got.FoodSuggestions) != 0 {
		t.Fatalf("explicit empty list should win: got=%v", got.FoodSuggestions)
	}
}

func TestTrimFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with padding", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"single line fence", "```{\"a\":1}```", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TrimFences(tc.in); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestDecodeReplyFencedJSON(t *testing.T) {
	rep := DecodeReply("```json\n{\"englishSummary\":\"fenced\"}\n```")
	if rep.Parsed == nil {
		t.Fatalf("fenced JSON should parse")
	}
	got := Normalize(rep)
	if got.EnglishSummary != "fenced" {
		t.Fatalf("english: got=%q", got.EnglishSummary)
	}
}
