package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kadykov/cv-adapt/internal/config"
	"github.com/kadykov/cv-adapt/internal/language"
	"github.com/kadykov/cv-adapt/internal/llm"
	"github.com/kadykov/cv-adapt/internal/pipeline"
	"github.com/kadykov/cv-adapt/internal/store"
)

// runInputs is everything a generation command needs after flag/config
// merging and file loading.
type runInputs struct {
	cfg      config.Config
	lang     language.Language
	cvText   string
	jobText  string
	notes    string
	client   llm.Client
	artifact *store.Store // nil unless a database URL is configured
}

// addGenerationFlags registers the flags shared by generate and competences.
func addGenerationFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.CV, "cv", "", "path to the raw CV text file (required)")
	cmd.Flags().StringVar(&cfg.Job, "job", "", "path to the job description text file (required)")
	cmd.Flags().StringVar(&cfg.Notes, "notes", "", "path to optional generation notes")
	cmd.Flags().StringVar(&cfg.Language, "language", "", "target language code (en, fr, de, es, it)")
	cmd.Flags().StringVar(&cfg.Provider, "provider", "", "generation backend (gemini, claude)")
	cmd.Flags().StringVar(&cfg.Model, "model", "", "backend model override")
	cmd.Flags().StringVar(&cfg.APIKey, "api-key", "", "backend API key (defaults to GEMINI_API_KEY or ANTHROPIC_API_KEY)")
	cmd.Flags().StringVar(&cfg.DatabaseURL, "database-url", "", "PostgreSQL URL for run persistence")
	cmd.Flags().BoolVar(&cfg.Verbose, "verbose", false, "print detailed progress")
}

// prepareRun merges config, validates it, loads input files and builds the
// backend client and optional store.
func prepareRun(ctx context.Context, cfg config.Config, configPath string) (*runInputs, error) {
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.CV == "" || cfg.Job == "" {
		return nil, fmt.Errorf("--cv and --job are required")
	}

	lang, err := language.Get(cfg.Language)
	if err != nil {
		return nil, err
	}

	cvText, err := readTextFile(cfg.CV)
	if err != nil {
		return nil, err
	}
	jobText, err := readTextFile(cfg.Job)
	if err != nil {
		return nil, err
	}
	notes := ""
	if cfg.Notes != "" {
		if notes, err = readTextFile(cfg.Notes); err != nil {
			return nil, err
		}
	}

	llmCfg := &llm.Config{Provider: llm.Provider(cfg.Provider), Model: cfg.Model}
	client, err := llm.NewClient(ctx, llmCfg, resolveAPIKey(cfg))
	if err != nil {
		return nil, err
	}

	var artifact *store.Store
	if cfg.DatabaseURL != "" {
		artifact, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: run persistence disabled: %v\n", err)
		} else if err := artifact.EnsureSchema(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: run persistence disabled: %v\n", err)
			artifact.Close()
			artifact = nil
		}
	}

	return &runInputs{
		cfg:      cfg,
		lang:     lang,
		cvText:   cvText,
		jobText:  jobText,
		notes:    notes,
		client:   client,
		artifact: artifact,
	}, nil
}

// pipelineOptions assembles the pipeline configuration for a run.
func (r *runInputs) pipelineOptions(onProgress pipeline.ProgressCallback) pipeline.Options {
	opts := pipeline.Options{
		Client: r.client,
		Store:  r.artifact,
	}
	if r.cfg.Verbose {
		opts.OnProgress = onProgress
	}
	return opts
}

// close releases the resources held for a run.
func (r *runInputs) close() {
	_ = r.client.Close()
	if r.artifact != nil {
		r.artifact.Close()
	}
}

func resolveAPIKey(cfg config.Config) string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	if llm.Provider(cfg.Provider) == llm.ProviderClaude {
		return os.Getenv("ANTHROPIC_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return text, nil
}
