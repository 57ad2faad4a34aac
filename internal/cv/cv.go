package cv

import (
	"github.com/go-playground/validator/v10"

	"github.com/kadykov/cv-adapt/internal/language"
	"github.com/kadykov/cv-adapt/internal/validation"
)

// PersonalInfo identifies the CV's subject. It is caller-supplied, never
// generated, so it carries struct-tag validation instead of the field
// validators applied to backend output.
type PersonalInfo struct {
	FullName string `json:"full_name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Validate checks the personal info using struct tags.
func (p *PersonalInfo) Validate() error {
	return validator.New().Struct(p)
}

// CV is the terminal artifact of a generation run: every section assembled
// under one target language. It is built exactly once, after all sections
// are available, and never mutated.
type CV struct {
	personalInfo PersonalInfo
	title        Title
	summary      Summary
	competences  *CoreCompetenceSet
	experiences  []Experience
	education    []Education
	skills       *SkillSet
	language     language.Language
}

// NewCV assembles the aggregate, rejecting missing sections. Language
// consistency of the textual leaves has already been enforced per-section by
// the generators; the aggregate only records which language that was.
func NewCV(info PersonalInfo, title Title, summary Summary, competences *CoreCompetenceSet,
	experiences []Experience, education []Education, skills *SkillSet, lang language.Language) (*CV, error) {

	if err := info.Validate(); err != nil {
		return nil, err
	}
	if competences == nil {
		return nil, &validation.FieldError{Field: "competences", Reason: "missing section"}
	}
	if skills == nil {
		return nil, &validation.FieldError{Field: "skills", Reason: "missing section"}
	}
	if len(experiences) == 0 {
		return nil, &validation.FieldError{Field: "experiences", Reason: "missing section"}
	}
	if len(education) == 0 {
		return nil, &validation.FieldError{Field: "education", Reason: "missing section"}
	}
	if !language.IsSupported(lang.Code) {
		return nil, &validation.FieldError{Field: "language", Reason: "unsupported language"}
	}

	doc := &CV{
		personalInfo: info,
		title:        title,
		summary:      summary,
		competences:  competences,
		experiences:  make([]Experience, len(experiences)),
		education:    make([]Education, len(education)),
		skills:       skills,
		language:     lang,
	}
	copy(doc.experiences, experiences)
	copy(doc.education, education)
	return doc, nil
}

// PersonalInfo returns the subject's identity.
func (c *CV) PersonalInfo() PersonalInfo { return c.personalInfo }

// Title returns the title section.
func (c *CV) Title() Title { return c.title }

// Summary returns the summary section.
func (c *CV) Summary() Summary { return c.summary }

// Competences returns the core competence set.
func (c *CV) Competences() *CoreCompetenceSet { return c.competences }

// Experiences returns the experience entries in order.
func (c *CV) Experiences() []Experience {
	out := make([]Experience, len(c.experiences))
	copy(out, c.experiences)
	return out
}

// Education returns the education entries in order.
func (c *CV) Education() []Education {
	out := make([]Education, len(c.education))
	copy(out, c.education)
	return out
}

// Skills returns the skills section.
func (c *CV) Skills() *SkillSet { return c.skills }

// Language returns the language every textual section was validated against.
func (c *CV) Language() language.Language { return c.language }
