// Package store provides optional PostgreSQL persistence of generation runs
// and their section artifacts. The pipeline works without it; when a
// database URL is configured, each completed stage's output is recorded for
// later inspection.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS generation_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			language TEXT NOT NULL,
			job_description TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'running',
			failed_stage TEXT,
			error TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS run_sections (
			run_id UUID NOT NULL REFERENCES generation_runs(id) ON DELETE CASCADE,
			section TEXT NOT NULL,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (run_id, section)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// CreateRun records a new generation run and returns its ID.
func (s *Store) CreateRun(ctx context.Context, languageCode, jobDescription string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (language, job_description, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		languageCode, jobDescription,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// SaveSection stores one generated section as JSON for a run, overwriting a
// previous value for the same section.
func (s *Store) SaveSection(ctx context.Context, runID uuid.UUID, section string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal section %s: %w", section, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO run_sections (run_id, section, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, section) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, section, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save section %s: %w", section, err)
	}
	return nil
}

// CompleteRun marks a run as assembled.
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE generation_runs SET status = 'assembled', completed_at = NOW() WHERE id = $1`,
		runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// FailRun marks a run as failed at a stage.
func (s *Store) FailRun(ctx context.Context, runID uuid.UUID, stage, message string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE generation_runs SET status = 'failed', failed_stage = $1, error = $2, completed_at = NOW() WHERE id = $3`,
		stage, message, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}
