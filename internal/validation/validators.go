// Package validation provides the composable field validators applied to
// every text a generation backend produces. Each validator checks one rule
// and fails with a *FieldError naming the field and the reason.
package validation

import (
	"fmt"
	"strings"
)

// Validator checks one rule on a single text field.
type Validator func(field, text string) error

// Apply runs each validator in order against the trimmed text and returns
// the first failure.
func Apply(field, text string, validators ...Validator) error {
	trimmed := strings.TrimSpace(text)
	for _, v := range validators {
		if err := v(field, trimmed); err != nil {
			return err
		}
	}
	return nil
}

// NotBlank fails on empty or whitespace-only text.
func NotBlank() Validator {
	return func(field, text string) error {
		if text == "" {
			return &FieldError{Field: field, Reason: "must not be blank"}
		}
		return nil
	}
}

// SingleLine fails if the text contains a line break.
func SingleLine() Validator {
	return func(field, text string) error {
		if strings.ContainsAny(text, "\n\r") {
			return &FieldError{Field: field, Reason: "must be a single line"}
		}
		return nil
	}
}

// MaxLength fails if the text exceeds n characters (runes, not bytes).
func MaxLength(n int) Validator {
	return func(field, text string) error {
		if count := len([]rune(text)); count > n {
			return &FieldError{
				Field:  field,
				Reason: fmt.Sprintf("is %d characters, maximum is %d", count, n),
			}
		}
		return nil
	}
}

// MaxWords fails if the text exceeds n whitespace-separated words.
func MaxWords(n int) Validator {
	return func(field, text string) error {
		if count := len(strings.Fields(text)); count > n {
			return &FieldError{
				Field:  field,
				Reason: fmt.Sprintf("is %d words, maximum is %d", count, n),
			}
		}
		return nil
	}
}

// NormalizeKey reduces text to the key used for uniqueness checks:
// lowercase with runs of whitespace collapsed to single spaces.
func NormalizeKey(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// UniqueWithin fails if two items of a collection normalize to the same key.
// The field is used as a prefix for the offending index.
func UniqueWithin(field string, items []string) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		key := NormalizeKey(item)
		if prev, dup := seen[key]; dup {
			return &FieldError{
				Field:  fmt.Sprintf("%s[%d]", field, i),
				Reason: fmt.Sprintf("duplicates %s[%d] (%q)", field, prev, item),
			}
		}
		seen[key] = i
	}
	return nil
}
