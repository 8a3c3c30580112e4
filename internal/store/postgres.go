package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// PostgresStore implements the run store on PostgreSQL for teams sharing
// one benchmark history across machines.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a PostgreSQL run store using the given DSN.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("PostgreSQL DSN is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timer TEXT NOT NULL,
		samples JSONB NOT NULL,
		host JSONB,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists a benchmark run, assigning an ID and creation time if
// the caller left them empty.
func (s *PostgresStore) SaveRun(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	samples, err := json.Marshal(run.Samples)
	if err != nil {
		return fmt.Errorf("failed to marshal samples: %w", err)
	}
	host, err := json.Marshal(run.Host)
	if err != nil {
		return fmt.Errorf("failed to marshal host info: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, timer, samples, host, created_at) VALUES ($1, $2, $3, $4, $5)`,
		run.ID, run.Timer, string(samples), string(host), run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// GetRun returns the run with the given ID.
func (s *PostgresStore) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, timer, samples, host, created_at FROM runs WHERE id = $1`, id)
	return scanRun(row)
}

// ListRuns returns the most recent runs, newest first. A limit of zero or
// less lists everything.
func (s *PostgresStore) ListRuns(limit int) ([]*Run, error) {
	query := `SELECT id, timer, samples, host, created_at FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
