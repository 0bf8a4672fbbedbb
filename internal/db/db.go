// Package db provides optional PostgreSQL persistence for generation runs.
// The pipeline works identically without a database; when one is configured,
// each run and its published artifact URIs are recorded for audit.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Run statuses
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateRun records the start of a generation run and returns its ID
func (s *Store) CreateRun(ctx context.Context, runToken, personName, email string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (run_token, person_name, email, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		runToken, personName, email, StatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a generation run as completed or failed
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE generation_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveArtifact records one published artifact and its storage URI
func (s *Store) SaveArtifact(ctx context.Context, runID uuid.UUID, theme, filename, uri string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO run_artifacts (run_id, theme, filename, uri)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (run_id, theme) DO UPDATE SET filename = $3, uri = $4, created_at = NOW()`,
		runID, theme, filename, uri,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", filename, err)
	}
	return nil
}
