package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/kadykov/cv-adapt/internal/config"
	"github.com/kadykov/cv-adapt/internal/cv"
	"github.com/kadykov/cv-adapt/internal/langctx"
	"github.com/kadykov/cv-adapt/internal/observability"
	"github.com/kadykov/cv-adapt/internal/pipeline"
	"github.com/kadykov/cv-adapt/internal/rendering"
)

// competencesFile is the editable JSON shape shared by the competences
// command's output and the generate command's --competences input.
type competencesFile struct {
	Competences []string `json:"competences"`
}

func init() {
	var cfg appconfig.Config
	var configPath, competencesPath, outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a job-tailored CV",
		Long: "Generate runs the full pipeline: core competences, then title, experience, education " +
			"and skills concurrently, then the summary, then assembly. Pass --competences with a " +
			"curated set (from the competences command) to skip the first phase.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			run, err := prepareRun(ctx, cfg, configPath)
			if err != nil {
				return err
			}
			defer run.close()

			info := cv.PersonalInfo{
				FullName: run.cfg.Name,
				Email:    run.cfg.Email,
				Phone:    run.cfg.Phone,
				Location: run.cfg.Location,
			}
			if err := info.Validate(); err != nil {
				return fmt.Errorf("invalid personal info (--name/--email): %w", err)
			}

			printer := observability.NewPrinter(os.Stderr)
			p := pipeline.New(run.pipelineOptions(printer.PrintProgress))

			genCtx := langctx.With(ctx, run.lang)

			var doc *cv.CV
			if competencesPath != "" {
				competences, err := loadCompetences(competencesPath)
				if err != nil {
					return err
				}
				doc, err = p.GenerateCVWithCompetences(genCtx, run.cvText, run.jobText, info, competences, run.notes)
				if err != nil {
					return err
				}
			} else {
				doc, err = p.GenerateCV(genCtx, run.cvText, run.jobText, info, run.notes)
				if err != nil {
					return err
				}
			}

			if run.cfg.Verbose {
				printer.PrintCVOutline(doc)
			}

			output, err := rendering.Render(doc, rendering.Format(run.cfg.Format))
			if err != nil {
				return err
			}
			return writeOutput(outPath, output)
		},
	}

	addGenerationFlags(cmd, &cfg)
	cmd.Flags().StringVar(&cfg.Name, "name", "", "candidate full name (required)")
	cmd.Flags().StringVar(&cfg.Email, "email", "", "candidate email (required)")
	cmd.Flags().StringVar(&cfg.Phone, "phone", "", "candidate phone")
	cmd.Flags().StringVar(&cfg.Location, "location", "", "candidate location")
	cmd.Flags().StringVar(&cfg.Format, "format", "", "output format: markdown, json or yaml")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON config file")
	cmd.Flags().StringVar(&competencesPath, "competences", "", "path to a curated competences JSON file")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	rootCmd.AddCommand(cmd)
}

// loadCompetences reads a curated competence set, revalidating the
// invariants in case the caller's edits broke them.
func loadCompetences(path string) (*cv.CoreCompetenceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read competences file: %w", err)
	}

	var parsed competencesFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse competences file: %w", err)
	}

	return cv.NewCoreCompetenceSetFromTexts(parsed.Competences)
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
