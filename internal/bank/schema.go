package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionListSchema is the JSON Schema every bank file must satisfy after
// unwrapping. Validation happens before decoding into Question so that a
// malformed file is rejected as a whole instead of producing partial data.
var questionListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type": []any{"string", "integer"},
			},
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "string",
				},
				"minProperties": 2,
			},
			"correctAnswer": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"required": []any{"id", "question", "options", "correctAnswer"},
	},
}

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

// compiledQuestionListSchema compiles the bank schema once and caches it.
func compiledQuestionListSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go maps with typed
		// values. Round-trip through encoding/json to normalize.
		b, err := json.Marshal(questionListSchema)
		if err != nil {
			compiledSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compiledSchemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://question-list.json"
		if err := c.AddResource(url, parsed); err != nil {
			compiledSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(url)
	})
	return compiledSchema, compiledSchemaErr
}

// validateQuestionList validates a decoded question list against the schema.
func validateQuestionList(list any) error {
	schema, err := compiledQuestionListSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(list); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
