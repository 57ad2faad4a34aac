// Package schemas shape-checks raw backend output against embedded JSON
// Schemas, one per section. A shape mismatch is a structural parsing failure,
// distinct from the content rules enforced by the field validators.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

var (
	compiled   = make(map[string]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

// ShapeError reports that a backend response did not match the expected
// section shape.
type ShapeError struct {
	Section string
	Issues  []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("response for section %q does not match expected shape: %s",
		e.Section, strings.Join(e.Issues, "; "))
}

// Validate checks jsonText against the embedded schema for section
// (e.g. "competences" uses competences.schema.json). Returns a *ShapeError
// on mismatch, or a plain error when the document is not JSON at all or the
// schema cannot be loaded.
func Validate(section, jsonText string) error {
	schema, err := loadSchema(section)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return fmt.Errorf("response for section %q is not valid JSON: %w", section, err)
	}

	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, issue := range result.Errors() {
			issues = append(issues, fmt.Sprintf("%s: %s", issue.Field(), issue.Description()))
		}
		return &ShapeError{Section: section, Issues: issues}
	}

	return nil
}

func loadSchema(section string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[section]; ok {
		return schema, nil
	}

	data, err := schemaFiles.ReadFile(section + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("no schema for section %q: %w", section, err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for section %q: %w", section, err)
	}

	compiled[section] = schema
	return schema, nil
}
