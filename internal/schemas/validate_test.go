package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedSections(t *testing.T) {
	tests := []struct {
		section string
		payload string
	}{
		{"competences", `{"competences": ["Distributed Systems", "Team Leadership", "API Design", "Cloud Architecture"]}`},
		{"title", `{"title": "Senior Software Engineer"}`},
		{"summary", `{"summary": "Engineer with a decade of backend experience."}`},
		{"experience", `{"experiences": [{"company": "Acme", "position": "Engineer", "start_date": "2020", "description": "Work."}]}`},
		{"education", `{"education": [{"institution": "TU Munich", "degree": "MSc", "start_date": "2014", "description": "Studies."}]}`},
		{"skills", `{"groups": [{"name": "Languages", "skills": ["Go", "Python"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			assert.NoError(t, Validate(tt.section, tt.payload))
		})
	}
}

func TestValidateRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name    string
		section string
		payload string
	}{
		{"Missing key", "title", `{"heading": "Engineer"}`},
		{"Wrong type", "competences", `{"competences": "not a list"}`},
		{"Non-string entries", "competences", `{"competences": [1, 2, 3]}`},
		{"Entry missing required field", "experience", `{"experiences": [{"company": "Acme"}]}`},
		{"Entries not objects", "education", `{"education": ["TU Munich"]}`},
		{"Group missing skills", "skills", `{"groups": [{"name": "Languages"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.section, tt.payload)
			require.Error(t, err)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tt.section, shapeErr.Section)
			assert.NotEmpty(t, shapeErr.Issues)
		})
	}
}

func TestValidateRejectsNonJSON(t *testing.T) {
	err := Validate("title", "I could not produce JSON, sorry.")
	require.Error(t, err)

	var shapeErr *ShapeError
	assert.False(t, errors.As(err, &shapeErr))
}

func TestValidateUnknownSection(t *testing.T) {
	err := Validate("cover-letter", `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema")
}

func TestValidateEmptyListsAreShapeValid(t *testing.T) {
	// Cardinality is a content rule, not a shape rule.
	assert.NoError(t, Validate("competences", `{"competences": []}`))
	assert.NoError(t, Validate("experience", `{"experiences": []}`))
}
