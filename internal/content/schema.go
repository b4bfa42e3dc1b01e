package content

import "github.com/abhisek/keypals/internal/llm"

// OutlineSchema defines the JSON schema for a lesson outline.
var OutlineSchema = &llm.Schema{
	Name:        "lesson-outline",
	Description: "A short outline of a multi-session typing lesson for a child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Friendly title for the lesson (2-6 words)",
			},
			"setting": map[string]any{
				"type":        "string",
				"description": "One sentence describing where the lesson takes place",
			},
			"sessions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "One short line per session describing what happens",
			},
		},
		"required":             []any{"title", "setting", "sessions"},
		"additionalProperties": false,
	},
}
