package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/kadykov/cv-adapt/internal/detection"
	"github.com/kadykov/cv-adapt/internal/langctx"
)

// ConfidenceThreshold is the minimum detector confidence at which a detected
// language counts as evidence. Below it the text is treated as indeterminate
// and passes: short technical terms ("Kubernetes", "CI/CD") must not be
// rejected just because no language can be attributed to them.
const ConfidenceThreshold = 0.7

// LanguageValidator enforces the cross-field language invariant: every
// textual leaf of a generated section must be written in the target language
// carried by the ambient context. One instance is shared by all generators.
type LanguageValidator struct {
	detector detection.Detector
}

// NewLanguageValidator builds a validator around the given detector.
func NewLanguageValidator(detector detection.Detector) *LanguageValidator {
	return &LanguageValidator{detector: detector}
}

// Validate checks text against the target language on ctx. Multi-line text
// is checked line by line in addition to the block as a whole, so a block
// whose lines disagree with each other or with the target is rejected.
// Returns *langctx.NotSetError when no target language is established.
func (v *LanguageValidator) Validate(ctx context.Context, field, text string) error {
	target, err := langctx.From(ctx)
	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	candidates := []string{trimmed}
	if strings.Contains(trimmed, "\n") {
		for _, line := range strings.Split(trimmed, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				candidates = append(candidates, line)
			}
		}
	}

	for _, candidate := range candidates {
		result := v.detector.Detect(candidate)
		if !result.Known || result.Confidence < ConfidenceThreshold {
			continue
		}
		if result.Language.Code != target.Code {
			return &FieldError{
				Field: field,
				Reason: fmt.Sprintf("detected language %s (confidence %.2f), target is %s",
					result.Language.Code, result.Confidence, target.Code),
			}
		}
	}

	return nil
}
