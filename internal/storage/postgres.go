package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// PostgresArchive stores digest runs in PostgreSQL for deployments that want
// queryable history instead of (or in addition to) the JSON files.
type PostgresArchive struct {
	db            *sql.DB
	retentionDays int
}

// NewPostgresArchive connects, pings and creates the schema if needed.
func NewPostgresArchive(connectionString string, retentionDays int) (*PostgresArchive, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	archive := &PostgresArchive{
		db:            db,
		retentionDays: retentionDays,
	}

	if err := archive.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Println("PostgreSQL archive connected successfully")
	return archive, nil
}

func (a *PostgresArchive) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS digest_runs (
		run_date   DATE PRIMARY KEY,
		pulse      TEXT NOT NULL,
		outlook    TEXT NOT NULL,
		sections   JSONB NOT NULL,
		stats      JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_digest_runs_created_at ON digest_runs (created_at);
	`
	_, err := a.db.Exec(schema)
	return err
}

// Save upserts the run for its date; re-running the pipeline the same day
// replaces that day's archive row.
func (a *PostgresArchive) Save(rec Record) error {
	sections, err := json.Marshal(rec.Sections)
	if err != nil {
		return fmt.Errorf("failed to marshal sections: %w", err)
	}
	stats, err := json.Marshal(rec.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	query := `
	INSERT INTO digest_runs (run_date, pulse, outlook, sections, stats)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (run_date) DO UPDATE SET
		pulse = EXCLUDED.pulse,
		outlook = EXCLUDED.outlook,
		sections = EXCLUDED.sections,
		stats = EXCLUDED.stats,
		created_at = now()
	`
	if _, err := a.db.Exec(query, rec.Date, rec.Pulse, rec.Outlook, sections, stats); err != nil {
		return fmt.Errorf("failed to save digest run: %w", err)
	}
	return nil
}

// Cleanup prunes runs older than the retention window.
func (a *PostgresArchive) Cleanup() (int64, error) {
	if a.retentionDays <= 0 {
		return 0, nil
	}

	res, err := a.db.Exec(
		`DELETE FROM digest_runs WHERE run_date < CURRENT_DATE - $1 * INTERVAL '1 day'`,
		a.retentionDays,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune old runs: %w", err)
	}
	return res.RowsAffected()
}

func (a *PostgresArchive) Close() error {
	return a.db.Close()
}
