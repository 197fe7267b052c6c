package bank

import "github.com/abhisek/traitsort/internal/validate"

// FileSchema is the JSON schema of a question bank document.
var FileSchema = &validate.Schema{
	Name: "question-bank",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"groups": map[string]any{
				"type":     "array",
				"minItems": GroupCount,
				"maxItems": GroupCount,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":     "array",
							"minItems": OptionsPerGroup,
							"maxItems": OptionsPerGroup,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"label": map[string]any{
										"type":      "string",
										"minLength": 1,
									},
									"trait": map[string]any{
										"type":        "string",
										"minLength":   1,
										"description": "Primary trait tag. Tags outside the eight primary traits are allowed but score nothing.",
									},
								},
								"required":             []any{"label", "trait"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"groups"},
		"additionalProperties": false,
	},
}
