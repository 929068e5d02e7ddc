// Package db provides optional PostgreSQL persistence for extraction
// history. The pipeline works fully without it; when a database is
// configured, each successful extraction is recorded for later review.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/site-scribe/internal/schemas"
	"github.com/jonathan/site-scribe/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and ensures the schema exists.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const createRunsTable = `
CREATE TABLE IF NOT EXISTS extraction_runs (
	id UUID PRIMARY KEY,
	source TEXT NOT NULL,
	fields JSONB NOT NULL,
	low_confidence BOOLEAN NOT NULL,
	export_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func (db *DB) ensureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, createRunsTable); err != nil {
		return fmt.Errorf("failed to create extraction_runs table: %w", err)
	}
	return nil
}

// Run is one recorded extraction.
type Run struct {
	ID            uuid.UUID       `json:"id"`
	Source        string          `json:"source"`
	Fields        json.RawMessage `json:"fields"`
	LowConfidence bool            `json:"low_confidence"`
	ExportURL     *string         `json:"export_url"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RecordRun stores one extraction result. The serialized report is checked
// against the report schema before insert so the table never holds a
// malformed artifact.
func (db *DB) RecordRun(ctx context.Context, source string, rep *types.Report) (uuid.UUID, error) {
	payload, err := json.Marshal(rep)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := schemas.ValidateReport(payload); err != nil {
		return uuid.Nil, fmt.Errorf("report failed schema validation: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO extraction_runs (id, source, fields, low_confidence, export_url)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, source, payload, rep.LowConfidence, rep.ExportCSVURL,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record run: %w", err)
	}
	return id, nil
}

// ListRecentRuns returns the most recent extractions, newest first.
func (db *DB) ListRecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, source, fields, low_confidence, export_url, created_at
		 FROM extraction_runs
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.Fields, &r.LowConfidence, &r.ExportURL, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
