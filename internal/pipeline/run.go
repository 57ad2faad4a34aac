// Package pipeline orchestrates a full generation run: competences first,
// then the four independent component generators concurrently, then the
// summary built from their output, then assembly of the aggregate CV.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/detection"
	"github.com/kadykov/cv-adapt/internal/generators"
	"github.com/kadykov/cv-adapt/internal/langctx"
	"github.com/kadykov/cv-adapt/internal/llm"
	"github.com/kadykov/cv-adapt/internal/rendering"
	"github.com/kadykov/cv-adapt/internal/store"
)

// Stage identifies one phase of the run protocol.
type Stage string

// Run stages in execution order.
const (
	StageCompetences Stage = "competences"
	StageComponents  Stage = "components"
	StageSummary     Stage = "summary"
	StageAssembly    Stage = "assembly"
)

// StageError records at which stage a run failed. The underlying error
// propagates unchanged through Unwrap; the orchestrator never downgrades it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("generation failed at stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ProgressEvent reports the completion of one stage.
type ProgressEvent struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is invoked as the run advances.
type ProgressCallback func(event ProgressEvent)

// Options configures a Pipeline.
type Options struct {
	// Client is the generation backend. Required.
	Client llm.Client
	// Detector classifies generated text. Defaults to the lingua detector.
	Detector detection.Detector
	// Store, when set, records runs and their sections.
	Store *store.Store
	// OnProgress, when set, receives stage completion events.
	OnProgress ProgressCallback
}

// Pipeline coordinates the section generators into full runs.
type Pipeline struct {
	gen        *generators.Generator
	store      *store.Store
	onProgress ProgressCallback
}

// New builds a Pipeline.
func New(opts Options) *Pipeline {
	detector := opts.Detector
	if detector == nil {
		detector = detection.NewLinguaDetector()
	}
	return &Pipeline{
		gen:        generators.New(opts.Client, detector),
		store:      opts.Store,
		onProgress: opts.OnProgress,
	}
}

func (p *Pipeline) emit(stage Stage, runID uuid.UUID, message string, content any) {
	if p.onProgress == nil {
		return
	}
	event := ProgressEvent{Stage: stage, Message: message, Content: content}
	if runID != uuid.Nil {
		event.RunID = runID.String()
	}
	p.onProgress(event)
}

// GenerateCompetences runs the first phase on its own: the core competence
// set, returned to the caller for optional curation before the rest of the
// run. Requires an ambient target language on ctx.
func (p *Pipeline) GenerateCompetences(ctx context.Context, cvText, jobDescription, notes string) (*cv.CoreCompetenceSet, error) {
	competences, err := p.gen.Competences(ctx, generators.Context{
		CVText:         cvText,
		JobDescription: jobDescription,
		Notes:          notes,
	})
	if err != nil {
		return nil, &StageError{Stage: StageCompetences, Err: err}
	}

	p.emit(StageCompetences, uuid.Nil, fmt.Sprintf("generated %d core competences", competences.Len()), competences.Texts())
	return competences, nil
}

// componentResults holds the output of the concurrent phase.
type componentResults struct {
	title       cv.Title
	experiences []cv.Experience
	education   []cv.Education
	skills      *cv.SkillSet
}

// GenerateCVWithCompetences runs the second phase from an already-fixed
// (possibly caller-edited) competence set: Title, Experience, Education and
// Skills concurrently, then Summary, then assembly. The competence set must
// already satisfy its invariants, which its constructor guarantees.
func (p *Pipeline) GenerateCVWithCompetences(ctx context.Context, cvText, jobDescription string,
	info cv.PersonalInfo, competences *cv.CoreCompetenceSet, notes string) (*cv.CV, error) {

	if competences == nil {
		return nil, &generators.InputError{Field: "competences"}
	}
	lang, err := langctx.From(ctx)
	if err != nil {
		return nil, err
	}

	runID := p.createRun(ctx, lang.Code, jobDescription)

	gc := generators.Context{
		CVText:         cvText,
		JobDescription: jobDescription,
		Competences:    competences,
		Notes:          notes,
	}

	// The four component generators are mutually independent: each depends
	// only on the fixed competence set and the original inputs. First
	// failure cancels the siblings via the group context.
	var results componentResults
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		title, err := p.gen.Title(gCtx, gc)
		results.title = title
		return err
	})
	g.Go(func() error {
		experiences, err := p.gen.Experience(gCtx, gc)
		results.experiences = experiences
		return err
	})
	g.Go(func() error {
		education, err := p.gen.Education(gCtx, gc)
		results.education = education
		return err
	})
	g.Go(func() error {
		skills, err := p.gen.Skills(gCtx, gc)
		results.skills = skills
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, p.fail(ctx, runID, StageComponents, err)
	}

	p.saveSections(ctx, runID, map[string]any{
		"competences": competences.Texts(),
		"title":       results.title.Text(),
		"experience":  results.experiences,
		"education":   results.education,
		"skills":      skillsContent(results.skills),
	})
	p.emit(StageComponents, runID, "generated title, experience, education and skills", nil)

	// Summary strictly after the join: its prompt is built from the other
	// sections rendered to a minimal textual form.
	gc.PriorSections = rendering.MinimalSections(results.title, competences,
		results.experiences, results.education, results.skills)
	summary, err := p.gen.Summary(ctx, gc)
	if err != nil {
		return nil, p.fail(ctx, runID, StageSummary, err)
	}
	p.saveSections(ctx, runID, map[string]any{"summary": summary.Text()})
	p.emit(StageSummary, runID, "generated summary", nil)

	doc, err := cv.NewCV(info, results.title, summary, competences,
		results.experiences, results.education, results.skills, lang)
	if err != nil {
		return nil, p.fail(ctx, runID, StageAssembly, err)
	}

	if p.store != nil && runID != uuid.Nil {
		_ = p.store.CompleteRun(ctx, runID)
	}
	p.emit(StageAssembly, runID, "assembled CV", nil)

	return doc, nil
}

// GenerateCV is the single-step protocol: both phases with no caller
// intervention between them.
func (p *Pipeline) GenerateCV(ctx context.Context, cvText, jobDescription string,
	info cv.PersonalInfo, notes string) (*cv.CV, error) {

	competences, err := p.GenerateCompetences(ctx, cvText, jobDescription, notes)
	if err != nil {
		return nil, err
	}
	return p.GenerateCVWithCompetences(ctx, cvText, jobDescription, info, competences, notes)
}

// createRun records the run when a store is configured. Persistence is
// best-effort; a failed insert downgrades the run to unpersisted.
func (p *Pipeline) createRun(ctx context.Context, languageCode, jobDescription string) uuid.UUID {
	if p.store == nil {
		return uuid.Nil
	}
	runID, err := p.store.CreateRun(ctx, languageCode, jobDescription)
	if err != nil {
		return uuid.Nil
	}
	return runID
}

func (p *Pipeline) saveSections(ctx context.Context, runID uuid.UUID, sections map[string]any) {
	if p.store == nil || runID == uuid.Nil {
		return
	}
	for section, content := range sections {
		_ = p.store.SaveSection(ctx, runID, section, content)
	}
}

// skillsContent flattens a skill set into a serializable form.
func skillsContent(skills *cv.SkillSet) map[string][]string {
	out := make(map[string][]string)
	for _, group := range skills.Groups() {
		names := make([]string, 0, len(group.Skills()))
		for _, skill := range group.Skills() {
			names = append(names, skill.Text())
		}
		out[group.Name()] = names
	}
	return out
}

func (p *Pipeline) fail(ctx context.Context, runID uuid.UUID, stage Stage, err error) error {
	if p.store != nil && runID != uuid.Nil {
		_ = p.store.FailRun(ctx, runID, string(stage), err.Error())
	}
	return &StageError{Stage: stage, Err: err}
}
