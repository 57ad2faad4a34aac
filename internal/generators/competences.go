package generators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/llm"
)

// SectionCompetences names the competence section for prompts and schemas.
const SectionCompetences = "competences"

type rawCompetences struct {
	Competences []string `json:"competences"`
}

// Competences generates the core competence set.
func (g *Generator) Competences(ctx context.Context, gc Context) (*cv.CoreCompetenceSet, error) {
	raw, err := g.invoke(ctx, SectionCompetences, gc)
	if err != nil {
		return nil, err
	}

	var parsed rawCompetences
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &llm.BackendError{Message: "failed to decode competences response", Cause: err}
	}
	if len(parsed.Competences) == 0 {
		return nil, emptyListError("competences")
	}

	for i, text := range parsed.Competences {
		if err := g.checkLanguage(ctx, fmt.Sprintf("competences[%d]", i), text); err != nil {
			return nil, err
		}
	}

	return cv.NewCoreCompetenceSetFromTexts(parsed.Competences)
}
