// Package prompts holds the externalized prompt templates for every section
// generator. Templates are stored as JSON files ({"system": ..., "user": ...})
// and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// sectionPrompts is one parsed template file.
type sectionPrompts struct {
	System string `json:"system"`
	User   string `json:"user"`
}

var (
	cache   = make(map[string]sectionPrompts)
	cacheMu sync.RWMutex
)

// System returns the system prompt for a section (e.g. "competences").
func System(section string) (string, error) {
	p, err := load(section)
	if err != nil {
		return "", err
	}
	return p.System, nil
}

// User renders the user prompt for a section, replacing {{.Key}}
// placeholders with values from data.
func User(section string, data map[string]string) (string, error) {
	p, err := load(section)
	if err != nil {
		return "", err
	}
	return Format(p.User, data), nil
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a deliberately simple template system; prompt files
// carry no logic.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

func load(section string) (sectionPrompts, error) {
	cacheMu.RLock()
	if p, ok := cache[section]; ok {
		cacheMu.RUnlock()
		return p, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(section + ".json")
	if err != nil {
		return sectionPrompts{}, fmt.Errorf("failed to read prompt file for section %q: %w", section, err)
	}

	var p sectionPrompts
	if err := json.Unmarshal(data, &p); err != nil {
		return sectionPrompts{}, fmt.Errorf("failed to parse prompt file for section %q: %w", section, err)
	}
	if p.System == "" || p.User == "" {
		return sectionPrompts{}, fmt.Errorf("prompt file for section %q must define both system and user prompts", section)
	}

	cacheMu.Lock()
	cache[section] = p
	cacheMu.Unlock()

	return p, nil
}
