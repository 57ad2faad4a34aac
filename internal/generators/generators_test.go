package generators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/detection"
	"github.com/kadykov/cv-adapt/internal/langctx"
	"github.com/kadykov/cv-adapt/internal/language"
	"github.com/kadykov/cv-adapt/internal/llm"
	"github.com/kadykov/cv-adapt/internal/validation"
)

// Canned, shape-valid English responses per section.
var englishResponses = map[string]string{
	SectionCompetences: `{"competences": ["Distributed Systems", "Team Leadership", "API Design", "Cloud Architecture"]}`,
	SectionTitle:       `{"title": "Senior Software Engineer"}`,
	SectionSummary:     `{"summary": "Senior engineer with ten years of experience building reliable backend platforms and leading small teams through complex migrations."}`,
	SectionExperience: `{"experiences": [{
		"company": "Acme Corp",
		"position": "Senior Engineer",
		"location": "Berlin",
		"start_date": "2020-01",
		"end_date": "",
		"description": "Led the migration of the billing platform to a service architecture.",
		"technologies": ["Go", "PostgreSQL"]
	}]}`,
	SectionEducation: `{"education": [{
		"institution": "TU Munich",
		"degree": "MSc Computer Science",
		"location": "Munich",
		"start_date": "2014",
		"end_date": "2016",
		"description": "Focus on distributed systems and databases."
	}]}`,
	SectionSkills: `{"groups": [
		{"name": "Languages", "skills": ["Go", "Python"]},
		{"name": "Infrastructure", "skills": ["Kubernetes", "Terraform"]}
	]}`,
}

// call records one backend invocation.
type call struct {
	Section string
	System  string
	User    string
}

// fakeClient dispatches on distinctive phrases in the rendered system prompt
// and answers with canned JSON, recording every call.
type fakeClient struct {
	mu        sync.Mutex
	calls     []call
	responses map[string]string
	errs      map[string]error
}

func newFakeClient() *fakeClient {
	responses := make(map[string]string, len(englishResponses))
	for k, v := range englishResponses {
		responses[k] = v
	}
	return &fakeClient{responses: responses, errs: make(map[string]error)}
}

func sectionFor(systemPrompt string) string {
	switch {
	case strings.Contains(systemPrompt, "core competences"):
		return SectionCompetences
	case strings.Contains(systemPrompt, "concise professional title"):
		return SectionTitle
	case strings.Contains(systemPrompt, "short professional summary"):
		return SectionSummary
	case strings.Contains(systemPrompt, "work experience"):
		return SectionExperience
	case strings.Contains(systemPrompt, "candidate's education"):
		return SectionEducation
	case strings.Contains(systemPrompt, "candidate's skills"):
		return SectionSkills
	default:
		return ""
	}
}

func (f *fakeClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	section := sectionFor(systemPrompt)

	f.mu.Lock()
	f.calls = append(f.calls, call{Section: section, System: systemPrompt, User: userPrompt})
	f.mu.Unlock()

	if section == "" {
		return "", fmt.Errorf("unrecognized system prompt")
	}
	if err := f.errs[section]; err != nil {
		return "", err
	}
	return f.responses[section], nil
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeClient) callsFor(section string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []call
	for _, c := range f.calls {
		if c.Section == section {
			out = append(out, c)
		}
	}
	return out
}

// phraseDetector is a deterministic detector: "bonjour" means French, very
// short snippets are indeterminate, everything else is English.
type phraseDetector struct{}

func (phraseDetector) Detect(text string) detection.Result {
	if strings.Contains(strings.ToLower(text), "bonjour") {
		return detection.Result{Language: language.MustGet("fr"), Confidence: 0.95, Known: true}
	}
	if len(strings.Fields(text)) < 3 {
		return detection.Result{}
	}
	return detection.Result{Language: language.MustGet("en"), Confidence: 0.9, Known: true}
}

func englishContext() context.Context {
	return langctx.With(context.Background(), language.MustGet("en"))
}

func validInput() Context {
	return Context{
		CVText:         "Ten years of Go and distributed systems work at Acme Corp.",
		JobDescription: "We are hiring a senior platform engineer for our billing team.",
	}
}

func TestCompetences(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	set, err := g.Competences(englishContext(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []string{"Distributed Systems", "Team Leadership", "API Design", "Cloud Architecture"}, set.Texts())

	calls := client.callsFor(SectionCompetences)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].System, "English")
	assert.NotContains(t, calls[0].System, "{{.Language}}")
	assert.Contains(t, calls[0].User, "Ten years of Go")
	assert.Contains(t, calls[0].User, "senior platform engineer")
}

func TestCompetencesBlankInputSkipsBackend(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	_, err := g.Competences(englishContext(), Context{CVText: "  ", JobDescription: "job"})
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "cvText", inputErr.Field)
	assert.Zero(t, client.callCount())

	_, err = g.Competences(englishContext(), Context{CVText: "cv", JobDescription: ""})
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "jobDescription", inputErr.Field)
	assert.Zero(t, client.callCount())
}

func TestCompetencesWithoutLanguageContext(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	_, err := g.Competences(context.Background(), validInput())
	require.Error(t, err)

	var notSet *langctx.NotSetError
	assert.True(t, errors.As(err, &notSet))
	assert.Zero(t, client.callCount())
}

func TestCompetencesBackendFailure(t *testing.T) {
	client := newFakeClient()
	client.errs[SectionCompetences] = fmt.Errorf("rate limited")
	g := New(client, phraseDetector{})

	_, err := g.Competences(englishContext(), validInput())
	require.Error(t, err)

	var backendErr *llm.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.ErrorContains(t, backendErr.Cause, "rate limited")
}

func TestCompetencesShapeMismatch(t *testing.T) {
	client := newFakeClient()
	client.responses[SectionCompetences] = `{"items": ["wrong key"]}`
	g := New(client, phraseDetector{})

	_, err := g.Competences(englishContext(), validInput())
	require.Error(t, err)

	var backendErr *llm.BackendError
	assert.True(t, errors.As(err, &backendErr))
}

func TestCompetencesEmptyList(t *testing.T) {
	client := newFakeClient()
	client.responses[SectionCompetences] = `{"competences": []}`
	g := New(client, phraseDetector{})

	_, err := g.Competences(englishContext(), validInput())
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "competences", fieldErr.Field)
}

func TestCompetencesLanguageMismatch(t *testing.T) {
	client := newFakeClient()
	client.responses[SectionCompetences] = `{"competences": ["bonjour le monde entier", "Team Leadership", "API Design", "Cloud Architecture"]}`
	g := New(client, phraseDetector{})

	_, err := g.Competences(englishContext(), validInput())
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.Field, "competences[0]")
}

func TestCompetencesContentRuleViolation(t *testing.T) {
	client := newFakeClient()
	// Shape-valid but over the word limit.
	client.responses[SectionCompetences] = `{"competences": ["this one has far too many words to pass", "Team Leadership", "API Design", "Cloud Architecture"]}`
	g := New(client, phraseDetector{})

	_, err := g.Competences(englishContext(), validInput())
	require.Error(t, err)

	var fieldErr *validation.FieldError
	assert.True(t, errors.As(err, &fieldErr))
}

func TestTitle(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	title, err := g.Title(englishContext(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", title.Text())
}

func TestTitleLanguageMismatch(t *testing.T) {
	client := newFakeClient()
	client.responses[SectionTitle] = `{"title": "bonjour tout le monde entier"}`
	g := New(client, phraseDetector{})

	_, err := g.Title(englishContext(), validInput())
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "title", fieldErr.Field)
}

func TestSummary(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	gc := validInput()
	gc.PriorSections = "## Title\nSenior Software Engineer\n"

	summary, err := g.Summary(englishContext(), gc)
	require.NoError(t, err)
	assert.Contains(t, summary.Text(), "Senior engineer")

	calls := client.callsFor(SectionSummary)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].User, "## Title")
}

func TestSummaryRequiresPriorSections(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	_, err := g.Summary(englishContext(), validInput())
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "priorSections", inputErr.Field)
	assert.Zero(t, client.callCount())
}

func TestExperience(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	entries, err := g.Experience(englishContext(), validInput())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, entries[0].Technologies)
}

func TestExperienceLanguageMismatchInDescription(t *testing.T) {
	client := newFakeClient()
	client.responses[SectionExperience] = `{"experiences": [{
		"company": "Acme Corp",
		"position": "Senior Engineer",
		"start_date": "2020-01",
		"description": "bonjour, j'ai dirigé la migration de la plateforme de facturation."
	}]}`
	g := New(client, phraseDetector{})

	_, err := g.Experience(englishContext(), validInput())
	require.Error(t, err)

	var fieldErr *validation.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.Field, "experiences[0]")
}

func TestExperienceEmptyList(t *testing.T) {
	client := newFakeClient()
	client.responses[SectionExperience] = `{"experiences": []}`
	g := New(client, phraseDetector{})

	_, err := g.Experience(englishContext(), validInput())
	require.Error(t, err)

	var fieldErr *validation.FieldError
	assert.True(t, errors.As(err, &fieldErr))
}

func TestEducation(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	entries, err := g.Education(englishContext(), validInput())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "TU Munich", entries[0].Institution)
	assert.Equal(t, "MSc Computer Science", entries[0].Degree)
}

func TestSkills(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	set, err := g.Skills(englishContext(), validInput())
	require.NoError(t, err)
	require.Len(t, set.Groups(), 2)
	assert.Equal(t, "Languages", set.Groups()[0].Name())
	assert.Equal(t, "Infrastructure", set.Groups()[1].Name())
}

func TestSkillsCrossGroupDuplicate(t *testing.T) {
	client := newFakeClient()
	client.responses[SectionSkills] = `{"groups": [
		{"name": "Languages", "skills": ["Go"]},
		{"name": "Tools", "skills": ["go"]}
	]}`
	g := New(client, phraseDetector{})

	_, err := g.Skills(englishContext(), validInput())
	require.Error(t, err)

	var fieldErr *validation.FieldError
	assert.True(t, errors.As(err, &fieldErr))
}

func TestCompetencesArePassedDownstream(t *testing.T) {
	client := newFakeClient()
	g := New(client, phraseDetector{})

	competences, err := cv.NewCoreCompetenceSetFromTexts([]string{
		"Distributed Systems", "Team Leadership", "API Design", "Cloud Architecture",
	})
	require.NoError(t, err)

	gc := validInput()
	gc.Competences = competences

	_, err = g.Title(englishContext(), gc)
	require.NoError(t, err)

	calls := client.callsFor(SectionTitle)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].User, "- Distributed Systems")
	assert.Contains(t, calls[0].User, "- Cloud Architecture")
}
