// Package cv defines the typed, immutable section values a generation run
// produces. Every constructor validates at build time; an invalid value is
// rejected outright rather than constructed in a partially valid state.
package cv

import (
	"fmt"

	"github.com/kadykov/cv-adapt/internal/validation"
)

// Budgets for core competences.
const (
	CompetenceMaxWords = 5
	CompetenceMaxChars = 50
	MinCompetences     = 4
	MaxCompetences     = 6
)

// CoreCompetence is a single short competence line.
type CoreCompetence struct {
	text string
}

// NewCoreCompetence validates and builds one competence.
func NewCoreCompetence(text string) (CoreCompetence, error) {
	if err := validation.Apply("competence", text,
		validation.NotBlank(),
		validation.SingleLine(),
		validation.MaxLength(CompetenceMaxChars),
		validation.MaxWords(CompetenceMaxWords),
	); err != nil {
		return CoreCompetence{}, err
	}
	return CoreCompetence{text: trim(text)}, nil
}

// Text returns the competence text.
func (c CoreCompetence) Text() string { return c.text }

// CoreCompetenceSet is an ordered set of 4–6 unique competences.
// Uniqueness is by normalized text; insertion order is preserved.
type CoreCompetenceSet struct {
	items []CoreCompetence
}

// NewCoreCompetenceSet validates cardinality and uniqueness.
func NewCoreCompetenceSet(items []CoreCompetence) (*CoreCompetenceSet, error) {
	if len(items) < MinCompetences || len(items) > MaxCompetences {
		return nil, &validation.FieldError{
			Field:  "competences",
			Reason: fmt.Sprintf("has %d items, expected between %d and %d", len(items), MinCompetences, MaxCompetences),
		}
	}
	if err := validation.UniqueWithin("competences", texts(items)); err != nil {
		return nil, err
	}

	set := &CoreCompetenceSet{items: make([]CoreCompetence, len(items))}
	copy(set.items, items)
	return set, nil
}

// NewCoreCompetenceSetFromTexts builds the set from raw strings, validating
// each competence individually first.
func NewCoreCompetenceSetFromTexts(items []string) (*CoreCompetenceSet, error) {
	competences := make([]CoreCompetence, 0, len(items))
	for _, text := range items {
		competence, err := NewCoreCompetence(text)
		if err != nil {
			return nil, err
		}
		competences = append(competences, competence)
	}
	return NewCoreCompetenceSet(competences)
}

// Items returns the competences in insertion order.
func (s *CoreCompetenceSet) Items() []CoreCompetence {
	out := make([]CoreCompetence, len(s.items))
	copy(out, s.items)
	return out
}

// Texts returns the competence texts in insertion order.
func (s *CoreCompetenceSet) Texts() []string { return texts(s.items) }

// Len returns the number of competences.
func (s *CoreCompetenceSet) Len() int { return len(s.items) }

func texts(items []CoreCompetence) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.text
	}
	return out
}
