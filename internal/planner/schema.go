package planner

// planResponseSchema validates the collaborator's decomposition response
// before any field is consumed.
const planResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "description", "estimated_hours", "required_skills", "priority"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "estimated_hours": {"type": "number", "minimum": 0},
          "required_skills": {
            "type": "array",
            "items": {"type": "string"}
          },
          "priority": {"type": "string", "enum": ["high", "medium", "low"]}
        }
      }
    },
    "total_estimated_hours": {"type": "number", "minimum": 0},
    "recommended_team_size": {"type": "integer", "minimum": 1}
  }
}`
