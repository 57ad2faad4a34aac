package rendering

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kadykov/cv-adapt/internal/cv"
)

// Format names a structured output format.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// IsSupportedFormat reports whether f names a renderer.
func IsSupportedFormat(f string) bool {
	switch Format(f) {
	case FormatMarkdown, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// document is the serialization shape shared by the JSON and YAML renderers.
type document struct {
	PersonalInfo personalInfo    `json:"personal_info" yaml:"personal_info"`
	Title        string          `json:"title" yaml:"title"`
	Summary      string          `json:"summary" yaml:"summary"`
	Competences  []string        `json:"core_competences" yaml:"core_competences"`
	Experiences  []cv.Experience `json:"experiences" yaml:"experiences"`
	Education    []cv.Education  `json:"education" yaml:"education"`
	Skills       []skillGroup    `json:"skills" yaml:"skills"`
	Language     string          `json:"language" yaml:"language"`
}

type personalInfo struct {
	FullName string `json:"full_name" yaml:"full_name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

type skillGroup struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

func toDocument(doc *cv.CV) document {
	info := doc.PersonalInfo()
	groups := doc.Skills().Groups()
	skills := make([]skillGroup, len(groups))
	for i, group := range groups {
		skills[i] = skillGroup{Name: group.Name(), Skills: skillNames(group)}
	}

	return document{
		PersonalInfo: personalInfo{
			FullName: info.FullName,
			Email:    info.Email,
			Phone:    info.Phone,
			Location: info.Location,
		},
		Title:       doc.Title().Text(),
		Summary:     doc.Summary().Text(),
		Competences: doc.Competences().Texts(),
		Experiences: doc.Experiences(),
		Education:   doc.Education(),
		Skills:      skills,
		Language:    doc.Language().Code,
	}
}

// RenderJSON renders a full CV as an indented JSON document.
func RenderJSON(doc *cv.CV) (string, error) {
	data, err := json.MarshalIndent(toDocument(doc), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal CV: %w", err)
	}
	return string(data), nil
}

// RenderYAML renders a full CV as a YAML document.
func RenderYAML(doc *cv.CV) (string, error) {
	data, err := yaml.Marshal(toDocument(doc))
	if err != nil {
		return "", fmt.Errorf("failed to marshal CV: %w", err)
	}
	return string(data), nil
}

// Render renders doc in the requested format.
func Render(doc *cv.CV, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return RenderJSON(doc)
	case FormatYAML:
		return RenderYAML(doc)
	case FormatMarkdown, "":
		return RenderMarkdown(doc), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}
