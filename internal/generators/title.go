package generators

import (
	"context"
	"encoding/json"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/llm"
)

// SectionTitle names the title section for prompts and schemas.
const SectionTitle = "title"

type rawTitle struct {
	Title string `json:"title"`
}

// Title generates the professional title.
func (g *Generator) Title(ctx context.Context, gc Context) (cv.Title, error) {
	raw, err := g.invoke(ctx, SectionTitle, gc)
	if err != nil {
		return cv.Title{}, err
	}

	var parsed rawTitle
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return cv.Title{}, &llm.BackendError{Message: "failed to decode title response", Cause: err}
	}

	if err := g.checkLanguage(ctx, "title", parsed.Title); err != nil {
		return cv.Title{}, err
	}

	return cv.NewTitle(parsed.Title)
}
