package generators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/llm"
)

// SectionEducation names the education section for prompts and schemas.
const SectionEducation = "education"

type rawEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type rawEducationList struct {
	Education []rawEducation `json:"education"`
}

// Education generates the education entries.
func (g *Generator) Education(ctx context.Context, gc Context) ([]cv.Education, error) {
	raw, err := g.invoke(ctx, SectionEducation, gc)
	if err != nil {
		return nil, err
	}

	var parsed rawEducationList
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &llm.BackendError{Message: "failed to decode education response", Cause: err}
	}
	if len(parsed.Education) == 0 {
		return nil, emptyListError("education")
	}

	entries := make([]cv.Education, 0, len(parsed.Education))
	for i, entry := range parsed.Education {
		prefix := fmt.Sprintf("education[%d]", i)
		leaves := map[string]string{
			prefix + ".institution": entry.Institution,
			prefix + ".degree":      entry.Degree,
			prefix + ".location":    entry.Location,
			prefix + ".description": entry.Description,
		}
		for field, text := range leaves {
			if err := g.checkLanguage(ctx, field, text); err != nil {
				return nil, err
			}
		}

		built, err := cv.NewEducation(entry.Institution, entry.Degree, entry.Location,
			entry.StartDate, entry.EndDate, entry.Description)
		if err != nil {
			return nil, err
		}
		entries = append(entries, built)
	}

	return entries, nil
}
