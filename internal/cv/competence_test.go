package cv

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadykov/cv-adapt/internal/validation"
)

func TestNewCoreCompetence(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantError bool
	}{
		{name: "Valid", text: "Distributed Systems Design"},
		{name: "Trimmed", text: "  Team Leadership  "},
		{name: "Exactly five words", text: "one two three four five"},
		{name: "Six words", text: "one two three four five six", wantError: true},
		{name: "Over fifty characters", text: strings.Repeat("x", 51), wantError: true},
		{name: "Multi-line", text: "first\nsecond", wantError: true},
		{name: "Blank", text: "   ", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoreCompetence(tt.text)
			if tt.wantError {
				var fieldErr *validation.FieldError
				require.Error(t, err)
				assert.True(t, errors.As(err, &fieldErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.text), c.Text())
			}
		})
	}
}

func TestNewCoreCompetenceSetCardinality(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantError bool
	}{
		{name: "Three is too few", count: 3, wantError: true},
		{name: "Four is the minimum", count: 4},
		{name: "Five", count: 5},
		{name: "Six is the maximum", count: 6},
		{name: "Seven is too many", count: 7, wantError: true},
		{name: "Empty", count: 0, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts := make([]string, tt.count)
			for i := range texts {
				texts[i] = "competence number " + string(rune('a'+i))
			}

			set, err := NewCoreCompetenceSetFromTexts(texts)
			if tt.wantError {
				require.Error(t, err)
				var fieldErr *validation.FieldError
				require.True(t, errors.As(err, &fieldErr))
				assert.Equal(t, "competences", fieldErr.Field)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.count, set.Len())
				assert.Equal(t, texts, set.Texts())
			}
		})
	}
}

func TestNewCoreCompetenceSetRejectsDuplicates(t *testing.T) {
	_, err := NewCoreCompetenceSetFromTexts([]string{
		"Cloud Architecture",
		"Team Leadership",
		"cloud  architecture",
		"API Design",
	})
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.Field, "competences")
	assert.Contains(t, fieldErr.Reason, "duplicates")
}

func TestNewCoreCompetenceSetFromTextsRejectsInvalidItem(t *testing.T) {
	_, err := NewCoreCompetenceSetFromTexts([]string{
		"Cloud Architecture",
		"this competence has far too many words in it",
		"Team Leadership",
		"API Design",
	})
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "competence", fieldErr.Field)
}

func TestCoreCompetenceSetItemsIsACopy(t *testing.T) {
	set, err := NewCoreCompetenceSetFromTexts([]string{"a one", "b two", "c three", "d four"})
	require.NoError(t, err)

	items := set.Items()
	items[0] = CoreCompetence{}
	assert.Equal(t, "a one", set.Items()[0].Text())
}
