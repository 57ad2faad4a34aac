package cv

import "github.com/kadykov/cv-adapt/internal/validation"

// Education is one education entry. Like Experience, dates are opaque
// display strings.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description"`
}

// NewEducation validates and builds one entry.
func NewEducation(institution, degree, location, startDate, endDate, description string) (Education, error) {
	if err := validation.Apply("education.institution", institution,
		validation.NotBlank(), validation.SingleLine(), validation.MaxLength(EntryFieldMaxChars)); err != nil {
		return Education{}, err
	}
	if err := validation.Apply("education.degree", degree,
		validation.NotBlank(), validation.SingleLine(), validation.MaxLength(EntryFieldMaxChars)); err != nil {
		return Education{}, err
	}
	if err := validation.Apply("education.location", location,
		validation.SingleLine(), validation.MaxLength(EntryFieldMaxChars)); err != nil {
		return Education{}, err
	}
	if err := validation.Apply("education.start_date", startDate, validation.NotBlank(), validation.SingleLine()); err != nil {
		return Education{}, err
	}
	if err := validation.Apply("education.end_date", endDate, validation.SingleLine()); err != nil {
		return Education{}, err
	}
	if err := validation.Apply("education.description", description,
		validation.NotBlank(), validation.MaxLength(DescriptionMaxChars)); err != nil {
		return Education{}, err
	}

	return Education{
		Institution: trim(institution),
		Degree:      trim(degree),
		Location:    trim(location),
		StartDate:   trim(startDate),
		EndDate:     trim(endDate),
		Description: trim(description),
	}, nil
}
