package generators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/llm"
)

// SectionExperience names the experience section for prompts and schemas.
const SectionExperience = "experience"

type rawExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type rawExperiences struct {
	Experiences []rawExperience `json:"experiences"`
}

// Experience generates the work experience entries.
func (g *Generator) Experience(ctx context.Context, gc Context) ([]cv.Experience, error) {
	raw, err := g.invoke(ctx, SectionExperience, gc)
	if err != nil {
		return nil, err
	}

	var parsed rawExperiences
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &llm.BackendError{Message: "failed to decode experience response", Cause: err}
	}
	if len(parsed.Experiences) == 0 {
		return nil, emptyListError("experiences")
	}

	entries := make([]cv.Experience, 0, len(parsed.Experiences))
	for i, entry := range parsed.Experiences {
		prefix := fmt.Sprintf("experiences[%d]", i)
		leaves := map[string]string{
			prefix + ".company":     entry.Company,
			prefix + ".position":    entry.Position,
			prefix + ".location":    entry.Location,
			prefix + ".description": entry.Description,
		}
		for field, text := range leaves {
			if err := g.checkLanguage(ctx, field, text); err != nil {
				return nil, err
			}
		}
		for j, tech := range entry.Technologies {
			if err := g.checkLanguage(ctx, fmt.Sprintf("%s.technologies[%d]", prefix, j), tech); err != nil {
				return nil, err
			}
		}

		built, err := cv.NewExperience(entry.Company, entry.Position, entry.Location,
			entry.StartDate, entry.EndDate, entry.Description, entry.Technologies)
		if err != nil {
			return nil, err
		}
		entries = append(entries, built)
	}

	return entries, nil
}
