package insight

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Placeholder values used when the model reply carries no usable field.
const (
	DefaultEnglishSummary = "No summary generated"
	DefaultUrduSummary    = "Roman Urdu summary not available"
	DefaultDisclaimer     = "Yeh AI sirf samajhne ke liye hai, ilaaj ke liye nahi."
)

// Fields is the normalized insight shape, ready to persist. Every field is
// always populated: strings fall back to placeholders, lists to empty slices.
type Fields struct {
	EnglishSummary  string
	UrduSummary     string
	DoctorQuestions []string
	FoodSuggestions []string
	HomeRemedies    []string
	Disclaimer      string
}

// Reply is a decoded model reply. Parsed is nil when the reply text was not a
// JSON object; Raw always holds the verbatim text.
type Reply struct {
	Parsed map[string]any
	Raw    string
}

// Alias chains, tried in order. First non-empty value wins.
var (
	englishAliases  = []string{"englishSummary", "summary", "text"}
	urduAliases     = []string{"urduSummary", "romanUrduSummary"}
	questionAliases = []string{"doctorQuestions", "questions"}
	foodAliases     = []string{"recommendedFoods", "foodSuggestions", "recommended"}
	remedyAliases   = []string{"homeRemedies", "remedies"}
	disclaimerAlias = []string{"disclaimer"}
)

// DecodeReply strips a surrounding markdown code fence, if any, and attempts to
// parse the remainder as a JSON object. It never fails: a reply that is not a
// JSON object comes back with Parsed nil.
func DecodeReply(text string) Reply {
	trimmed := TrimFences(text)
	var m map[string]any
	if err := json.Unmarshal([]byte(trimmed), &m); err != nil || m == nil {
		return Reply{Raw: text}
	}
	return Reply{Parsed: m, Raw: text}
}

// Normalize maps a decoded reply onto Fields. Total: any input produces a
// fully-populated result. A non-JSON reply becomes the English summary.
func Normalize(rep Reply) Fields {
	if rep.Parsed == nil {
		english := strings.TrimSpace(rep.Raw)
		if english == "" {
			english = DefaultEnglishSummary
		}
		return Fields{
			EnglishSummary:  english,
			UrduSummary:     DefaultUrduSummary,
			DoctorQuestions: []string{},
			FoodSuggestions: []string{},
			HomeRemedies:    []string{},
			Disclaimer:      DefaultDisclaimer,
		}
	}

	m := rep.Parsed
	return Fields{
		EnglishSummary:  firstString(m, englishAliases, DefaultEnglishSummary),
		UrduSummary:     firstString(m, urduAliases, DefaultUrduSummary),
		DoctorQuestions: firstList(m, questionAliases),
		FoodSuggestions: firstList(m, foodAliases),
		HomeRemedies:    firstList(m, remedyAliases),
		Disclaimer:      firstString(m, disclaimerAlias, DefaultDisclaimer),
	}
}

// NormalizeReply is the one-call form: decode then normalize.
func NormalizeReply(text string) Fields {
	return Normalize(DecodeReply(text))
}

// TrimFences removes a surrounding ``` or ```json markdown fence. Text without
// a fence is returned trimmed of outer whitespace only.
func TrimFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		t = t[i+1:] // drop the language tag line
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

func firstString(m map[string]any, keys []string, def string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s := scalarString(v); strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return def
}

// firstList returns the first alias present as a list of strings. A scalar
// under a list key is wrapped into a single-element list. Presence wins over
// emptiness: an explicit empty array stops the alias chain.
func firstList(m map[string]any, keys []string) []string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if arr, ok := v.([]any); ok {
			out := make([]string, 0, len(arr))
			for _, item := range arr {
				if s := scalarString(item); strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
			return out
		}
		if s := scalarString(v); strings.TrimSpace(s) != "" {
			return []string{strings.TrimSpace(s)}
		}
	}
	return []string{}
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
