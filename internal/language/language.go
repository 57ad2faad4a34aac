// Package language provides the immutable registry of languages a generation
// run can target. Languages are registered once at package init; lookups by
// code never fail for a supported code.
package language

import (
	"fmt"
	"strings"
)

// Language describes one supported target language.
// Identity is Code; two Language values are the same language iff their
// codes are equal.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`        // English display name
	NativeName string `json:"native_name"` // name in the language itself

	// Formatting hints used by renderers.
	DateFormat       string `json:"date_format"`
	DecimalSeparator string `json:"decimal_separator"`
}

// Supported language codes.
const (
	CodeEnglish = "en"
	CodeFrench  = "fr"
	CodeGerman  = "de"
	CodeSpanish = "es"
	CodeItalian = "it"
)

// registry holds the supported languages in a fixed display order.
var registry = []Language{
	{Code: CodeEnglish, Name: "English", NativeName: "English", DateFormat: "January 2006", DecimalSeparator: "."},
	{Code: CodeFrench, Name: "French", NativeName: "Français", DateFormat: "janvier 2006", DecimalSeparator: ","},
	{Code: CodeGerman, Name: "German", NativeName: "Deutsch", DateFormat: "Januar 2006", DecimalSeparator: ","},
	{Code: CodeSpanish, Name: "Spanish", NativeName: "Español", DateFormat: "enero de 2006", DecimalSeparator: ","},
	{Code: CodeItalian, Name: "Italian", NativeName: "Italiano", DateFormat: "gennaio 2006", DecimalSeparator: ","},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, len(registry))
	for _, l := range registry {
		m[l.Code] = l
	}
	return m
}()

// Get returns the language registered under code.
func Get(code string) (Language, error) {
	lang, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Language{}, fmt.Errorf("unsupported language code %q", code)
	}
	return lang, nil
}

// MustGet returns the language registered under code, panicking for
// unsupported codes. Use only where the code is a compile-time constant.
func MustGet(code string) Language {
	lang, err := Get(code)
	if err != nil {
		panic(err)
	}
	return lang
}

// IsSupported reports whether code names a registered language.
func IsSupported(code string) bool {
	_, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

// All returns the registered languages in display order.
func All() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}

// English is the default target language.
func English() Language { return byCode[CodeEnglish] }
