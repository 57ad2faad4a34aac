// Package generators turns a generation context into validated CV sections.
// Each section generator shares one algorithm: resolve the target language
// from the ambient context, render the section's prompt, invoke the backend
// once, shape-check and map the raw result, run the field validators, and
// return the section or fail.
package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/detection"
	"github.com/kadykov/cv-adapt/internal/langctx"
	"github.com/kadykov/cv-adapt/internal/llm"
	"github.com/kadykov/cv-adapt/internal/prompts"
	"github.com/kadykov/cv-adapt/internal/schemas"
	"github.com/kadykov/cv-adapt/internal/validation"
)

// Context carries everything one section generator needs for a single call.
type Context struct {
	CVText         string
	JobDescription string

	// Competences is the fixed competence set the component phase builds
	// on. Nil for the competence generator itself.
	Competences *cv.CoreCompetenceSet

	// PriorSections is a minimal markdown rendering of the already
	// generated sections. Only the summary generator uses it.
	PriorSections string

	// Notes is optional caller guidance threaded into every prompt.
	Notes string
}

// validate rejects blank required inputs before any backend call.
func (c *Context) validate() error {
	if strings.TrimSpace(c.CVText) == "" {
		return &InputError{Field: "cvText"}
	}
	if strings.TrimSpace(c.JobDescription) == "" {
		return &InputError{Field: "jobDescription"}
	}
	return nil
}

// promptData renders the context into template placeholder values.
func (c *Context) promptData() map[string]string {
	competences := ""
	if c.Competences != nil {
		var sb strings.Builder
		for _, text := range c.Competences.Texts() {
			sb.WriteString("- ")
			sb.WriteString(text)
			sb.WriteString("\n")
		}
		competences = sb.String()
	}

	return map[string]string{
		"CVText":         c.CVText,
		"JobDescription": c.JobDescription,
		"Competences":    competences,
		"PriorSections":  c.PriorSections,
		"Notes":          c.Notes,
	}
}

// Generator runs section generations against one backend client, validating
// every textual leaf against the ambient target language.
type Generator struct {
	client llm.Client
	langv  *validation.LanguageValidator
}

// New builds a Generator.
func New(client llm.Client, detector detection.Detector) *Generator {
	return &Generator{
		client: client,
		langv:  validation.NewLanguageValidator(detector),
	}
}

// invoke runs the shared algorithm up to and including the shape check,
// returning the raw (shape-valid) JSON document for the section.
func (g *Generator) invoke(ctx context.Context, section string, gc Context) (string, error) {
	if err := gc.validate(); err != nil {
		return "", err
	}
	lang, err := langctx.From(ctx)
	if err != nil {
		return "", err
	}

	data := gc.promptData()
	data["Language"] = lang.Name

	system, err := prompts.System(section)
	if err != nil {
		return "", fmt.Errorf("failed to load system prompt: %w", err)
	}
	system = prompts.Format(system, data)

	user, err := prompts.User(section, data)
	if err != nil {
		return "", fmt.Errorf("failed to load user prompt: %w", err)
	}

	raw, err := g.client.GenerateJSON(ctx, system, user)
	if err != nil {
		return "", &llm.BackendError{
			Message: fmt.Sprintf("generation call for section %q failed", section),
			Cause:   err,
		}
	}

	if err := schemas.Validate(section, raw); err != nil {
		return "", &llm.BackendError{
			Message: fmt.Sprintf("section %q returned an unexpected shape", section),
			Cause:   err,
		}
	}

	return raw, nil
}

// checkLanguage validates one textual leaf against the ambient language.
func (g *Generator) checkLanguage(ctx context.Context, field, text string) error {
	return g.langv.Validate(ctx, field, text)
}

// emptyListError is the failure for a backend answering with zero entries
// for a list-shaped section. An empty list is never a valid answer.
func emptyListError(field string) error {
	return &validation.FieldError{Field: field, Reason: "backend returned no entries"}
}
