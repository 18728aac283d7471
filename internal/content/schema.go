package content

// deckSchema is the JSON schema every deck file must satisfy before it is
// trusted as quiz content. Cross-field rules the schema can't express
// (correct index in range) are checked separately in Load.
var deckSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"specialty_id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"specialty_name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"text": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string"},
					},
					"correct_answer": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"explanation": map[string]any{"type": "string"},
					"difficulty": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 5,
					},
					"image_url": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "text", "options", "correct_answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"specialty_id", "specialty_name", "questions"},
	"additionalProperties": false,
}
