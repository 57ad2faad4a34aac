package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/kadykov/cv-adapt/internal/config"
	"github.com/kadykov/cv-adapt/internal/langctx"
	"github.com/kadykov/cv-adapt/internal/observability"
	"github.com/kadykov/cv-adapt/internal/pipeline"
)

func init() {
	var cfg appconfig.Config
	var configPath, outPath string

	cmd := &cobra.Command{
		Use:   "competences",
		Short: "Generate core competences for review",
		Long: "Competences runs only the first phase of the pipeline and emits the generated set " +
			"as editable JSON. Curate it, then feed it back with 'generate --competences'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			run, err := prepareRun(ctx, cfg, configPath)
			if err != nil {
				return err
			}
			defer run.close()

			printer := observability.NewPrinter(os.Stderr)
			p := pipeline.New(run.pipelineOptions(printer.PrintProgress))

			set, err := p.GenerateCompetences(langctx.With(ctx, run.lang), run.cvText, run.jobText, run.notes)
			if err != nil {
				return err
			}

			if run.cfg.Verbose {
				printer.PrintCompetences(set)
			}

			data, err := json.MarshalIndent(competencesFile{Competences: set.Texts()}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal competences: %w", err)
			}
			return writeOutput(outPath, string(data))
		},
	}

	addGenerationFlags(cmd, &cfg)
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON config file")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	rootCmd.AddCommand(cmd)
}
