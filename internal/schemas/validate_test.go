package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const matchSchema = `{
	"type": "object",
	"required": ["matches"],
	"properties": {
		"matches": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["employee_id", "match_score"],
				"properties": {
					"employee_id": {"type": "string"},
					"match_score": {"type": "number", "minimum": 0, "maximum": 20}
				}
			}
		}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `{"matches": [{"employee_id": "emp1", "match_score": 14.5}]}`
	assert.NoError(t, ValidateJSONString(matchSchema, doc))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `{"matches": [{"employee_id": "emp1"}]}`
	err := ValidateJSONString(matchSchema, doc)
	assert.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJSONString_ScoreOutOfRange(t *testing.T) {
	doc := `{"matches": [{"employee_id": "emp1", "match_score": 50}]}`
	err := ValidateJSONString(matchSchema, doc)
	assert.Error(t, err)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(matchSchema, `{"matches": [`)
	assert.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
