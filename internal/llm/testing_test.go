package llm

var messageSchema = &OutputSchema{
	Name: "assessment-message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string", "minLength": 1},
			"tone":    map[string]any{"type": "string", "enum": []any{"warm", "neutral"}},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}
