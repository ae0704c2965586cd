package feedback

import "github.com/abhisek/assessly/internal/llm"

// MessageSchema defines the JSON schema for a generated assessment message.
var MessageSchema = &llm.OutputSchema{
	Name:        "assessment-message",
	Description: "A short message shown to a learner after finishing an assessment attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "2-4 encouraging sentences about the attempt, ending with what to revisit before trying again",
				"minLength":   1,
				"maxLength":   1200,
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}
