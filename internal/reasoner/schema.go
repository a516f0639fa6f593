package reasoner

// matchResponseSchema is the JSON Schema every Reasoner response must
// satisfy before any field of it is consumed.
const matchResponseSchema = `{
	"type": "object",
	"required": ["matches", "total_candidates"],
	"properties": {
		"matches": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["employee_id", "employee_name", "match_score", "matched_skills", "suggested_task", "reasoning"],
				"properties": {
					"employee_id": {"type": "string", "minLength": 1},
					"employee_name": {"type": "string"},
					"match_score": {"type": "number", "minimum": 0, "maximum": 20},
					"matched_skills": {"type": "array", "items": {"type": "string"}},
					"suggested_task": {"type": "string", "minLength": 1},
					"suggested_description": {"type": "string"},
					"suggested_deadline": {"type": "string"},
					"estimated_hours": {"type": "number", "minimum": 0},
					"reasoning": {"type": "string"}
				}
			}
		},
		"total_candidates": {"type": "integer", "minimum": 0}
	}
}`
