package cv

import "github.com/kadykov/cv-adapt/internal/validation"

// Budgets for the title and summary blocks.
const (
	TitleMaxChars   = 100
	TitleMaxWords   = 12
	SummaryMaxChars = 600
	SummaryMaxWords = 80
)

// Title is the single-line professional title.
type Title struct {
	text string
}

// NewTitle validates and builds the title.
func NewTitle(text string) (Title, error) {
	if err := validation.Apply("title", text,
		validation.NotBlank(),
		validation.SingleLine(),
		validation.MaxLength(TitleMaxChars),
		validation.MaxWords(TitleMaxWords),
	); err != nil {
		return Title{}, err
	}
	return Title{text: trim(text)}, nil
}

// Text returns the title text.
func (t Title) Text() string { return t.text }

// Summary is the bounded professional summary paragraph.
type Summary struct {
	text string
}

// NewSummary validates and builds the summary.
func NewSummary(text string) (Summary, error) {
	if err := validation.Apply("summary", text,
		validation.NotBlank(),
		validation.MaxLength(SummaryMaxChars),
		validation.MaxWords(SummaryMaxWords),
	); err != nil {
		return Summary{}, err
	}
	return Summary{text: trim(text)}, nil
}

// Text returns the summary text.
func (s Summary) Text() string { return s.text }
