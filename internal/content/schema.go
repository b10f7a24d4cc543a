package content

import "github.com/sandeepan/tutora/internal/llm"

// LessonSchema defines the JSON schema for lesson generation.
var LessonSchema = &llm.Schema{
	Name:        "lesson",
	Description: "A complete lesson document on a single topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short lesson title (3-8 words)",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "The full lesson body in Markdown: learning objectives, explanation with examples, practical applications, key concepts, common mistakes",
			},
		},
		"required":             []any{"title", "content"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz generation.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A multiple-choice quiz testing understanding of a lesson topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "Ordered question list, progressively harder",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer options, no duplicates",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct option, copied verbatim from options",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct (1-2 sentences)",
						},
					},
					"required":             []any{"question", "options", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
