package generators

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/llm"
)

// SectionSummary names the summary section for prompts and schemas.
const SectionSummary = "summary"

type rawSummary struct {
	Summary string `json:"summary"`
}

// Summary generates the professional summary. Its prompt is built from the
// minimal rendering of the other, already generated sections, so it is
// always the last generation step of a run.
func (g *Generator) Summary(ctx context.Context, gc Context) (cv.Summary, error) {
	if strings.TrimSpace(gc.PriorSections) == "" {
		return cv.Summary{}, &InputError{Field: "priorSections"}
	}

	raw, err := g.invoke(ctx, SectionSummary, gc)
	if err != nil {
		return cv.Summary{}, err
	}

	var parsed rawSummary
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return cv.Summary{}, &llm.BackendError{Message: "failed to decode summary response", Cause: err}
	}

	if err := g.checkLanguage(ctx, "summary", parsed.Summary); err != nil {
		return cv.Summary{}, err
	}

	return cv.NewSummary(parsed.Summary)
}
