package cv

import (
	"fmt"

	"github.com/kadykov/cv-adapt/internal/validation"
)

// Budgets for experience and education entries. Descriptions get a
// line-derived character budget: the rendered section allows
// descriptionMaxLines lines of roughly charsPerLine characters each.
const (
	EntryFieldMaxChars  = 100
	descriptionMaxLines = 15
	charsPerLine        = 80
	DescriptionMaxChars = descriptionMaxLines * charsPerLine
)

// Experience is one work experience entry. Dates are opaque display strings;
// no ordering between start and end is enforced.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

// NewExperience validates and builds one entry.
func NewExperience(company, position, location, startDate, endDate, description string, technologies []string) (Experience, error) {
	if err := validation.Apply("experience.company", company,
		validation.NotBlank(), validation.SingleLine(), validation.MaxLength(EntryFieldMaxChars)); err != nil {
		return Experience{}, err
	}
	if err := validation.Apply("experience.position", position,
		validation.NotBlank(), validation.SingleLine(), validation.MaxLength(EntryFieldMaxChars)); err != nil {
		return Experience{}, err
	}
	if err := validation.Apply("experience.location", location,
		validation.SingleLine(), validation.MaxLength(EntryFieldMaxChars)); err != nil {
		return Experience{}, err
	}
	if err := validation.Apply("experience.start_date", startDate, validation.NotBlank(), validation.SingleLine()); err != nil {
		return Experience{}, err
	}
	if err := validation.Apply("experience.end_date", endDate, validation.SingleLine()); err != nil {
		return Experience{}, err
	}
	if err := validation.Apply("experience.description", description,
		validation.NotBlank(), validation.MaxLength(DescriptionMaxChars)); err != nil {
		return Experience{}, err
	}
	for i, tech := range technologies {
		if err := validation.Apply(fmt.Sprintf("experience.technologies[%d]", i), tech,
			validation.NotBlank(), validation.SingleLine(), validation.MaxLength(EntryFieldMaxChars)); err != nil {
			return Experience{}, err
		}
	}
	if err := validation.UniqueWithin("experience.technologies", technologies); err != nil {
		return Experience{}, err
	}

	techs := make([]string, len(technologies))
	for i, t := range technologies {
		techs[i] = trim(t)
	}

	return Experience{
		Company:      trim(company),
		Position:     trim(position),
		Location:     trim(location),
		StartDate:    trim(startDate),
		EndDate:      trim(endDate),
		Description:  trim(description),
		Technologies: techs,
	}, nil
}
