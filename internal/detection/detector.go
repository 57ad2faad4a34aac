// Package detection identifies the language a piece of text is written in.
// The LanguageMatch field validator consults a Detector for every textual
// leaf of a generated section, so implementations must be cheap, synchronous
// and safe for concurrent use.
package detection

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/kadykov/cv-adapt/internal/language"
)

// Result is one detection outcome. Known is false when the detector could
// not attribute the text to any supported language at all; Confidence is the
// detector's score for Language in [0, 1].
type Result struct {
	Language   language.Language
	Confidence float64
	Known      bool
}

// Detector returns the best-guess language of a text.
type Detector interface {
	Detect(text string) Result
}

// linguaByCode maps registry codes onto lingua's language set.
var linguaByCode = map[string]lingua.Language{
	language.CodeEnglish: lingua.English,
	language.CodeFrench:  lingua.French,
	language.CodeGerman:  lingua.German,
	language.CodeSpanish: lingua.Spanish,
	language.CodeItalian: lingua.Italian,
}

// LinguaDetector is the default Detector, backed by the lingua statistical
// classifier restricted to the registered languages.
type LinguaDetector struct {
	detector lingua.LanguageDetector
	codes    map[lingua.Language]string
}

// NewLinguaDetector builds a detector over every registered language.
func NewLinguaDetector() *LinguaDetector {
	langs := make([]lingua.Language, 0, len(linguaByCode))
	codes := make(map[lingua.Language]string, len(linguaByCode))
	for code, ll := range linguaByCode {
		langs = append(langs, ll)
		codes[ll] = code
	}

	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			Build(),
		codes: codes,
	}
}

// Detect classifies text. Blank text is always unknown.
func (d *LinguaDetector) Detect(text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}
	}

	values := d.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return Result{}
	}

	// Values are sorted by descending confidence.
	top := values[0]
	code, ok := d.codes[top.Language()]
	if !ok {
		return Result{}
	}

	return Result{
		Language:   language.MustGet(code),
		Confidence: top.Value(),
		Known:      true,
	}
}
