package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInsightJSONSchema returns the shape we ask the model for, as a JSON-Schema
// (draft 2020-12 subset) generic map. Validation is advisory: a reply that fails
// it is logged and still handed to the normalizer, never rejected.
func BuildInsightJSONSchema() map[string]any {
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"englishSummary":   map[string]any{"type": "string", "minLength": 1},
			"urduSummary":      map[string]any{"type": "string"},
			"doctorQuestions":  stringList,
			"recommendedFoods": stringList,
			"foodsToAvoid":     stringList,
			"homeRemedies":     stringList,
			"riskLevel":        map[string]any{"type": "string"},
			"disclaimer":       map[string]any{"type": "string"},
		},
		"required": []string{"englishSummary"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
