package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobalert-engine/internal/domain"
)

func (d *DB) Migrate(ctx context.Context) error {
	_, err := d.Pool.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS job_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  filename TEXT NOT NULL UNIQUE,
  source TEXT NOT NULL,
  sender TEXT NOT NULL,
  subject TEXT NOT NULL,
  date TEXT NOT NULL,
  job_position TEXT NOT NULL,
  location TEXT NOT NULL,
  minimum_qualifications TEXT NOT NULL,
  job_postings TEXT NOT NULL DEFAULT '[]',
  remote INTEGER NOT NULL DEFAULT 0,
  processed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_job_entries_source ON job_entries(source);
`)
	return err
}

// SaveEntries upserts by filename: reprocessing the same dump replaces
// its record instead of accumulating duplicates.
func (d *DB) SaveEntries(ctx context.Context, entries []domain.JobEntry) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, e := range entries {
		postings, err := json.Marshal(e.JobPostings)
		if err != nil {
			return fmt.Errorf("marshal postings for %s: %w", e.Filename, err)
		}
		remote := 0
		if e.Remote {
			remote = 1
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO job_entries (filename, source, sender, subject, date, job_position, location, minimum_qualifications, job_postings, remote, processed_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(filename) DO UPDATE SET
  source=excluded.source,
  sender=excluded.sender,
  subject=excluded.subject,
  date=excluded.date,
  job_position=excluded.job_position,
  location=excluded.location,
  minimum_qualifications=excluded.minimum_qualifications,
  job_postings=excluded.job_postings,
  remote=excluded.remote,
  processed_at=excluded.processed_at;`,
			e.Filename, string(e.Provider), e.Sender, e.Subject, e.Date,
			e.JobPosition, e.Location, e.MinimumQualifications,
			string(postings), remote, e.ProcessedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", e.Filename, err)
		}
	}

	return tx.Commit()
}

func (d *DB) ListEntries(ctx context.Context) ([]domain.JobEntry, error) {
	rows, err := d.Pool.QueryContext(ctx, `
SELECT filename, source, sender, subject, date, job_position, location, minimum_qualifications, job_postings, remote, processed_at
FROM job_entries
ORDER BY filename;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobEntry
	for rows.Next() {
		var (
			e            domain.JobEntry
			source       string
			postingsJSON string
			remote       int
			processedStr string
		)
		if err := rows.Scan(&e.Filename, &source, &e.Sender, &e.Subject, &e.Date,
			&e.JobPosition, &e.Location, &e.MinimumQualifications,
			&postingsJSON, &remote, &processedStr); err != nil {
			return nil, err
		}
		e.Provider = domain.Provider(source)
		e.Remote = remote != 0
		_ = json.Unmarshal([]byte(postingsJSON), &e.JobPostings)
		e.ProcessedAt, _ = time.Parse(time.RFC3339, processedStr)
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountBySource returns per-provider record counts, the numbers the old
// error-analysis tooling kept comparing.
func (d *DB) CountBySource(ctx context.Context) (map[string]int, error) {
	rows, err := d.Pool.QueryContext(ctx, `SELECT source, COUNT(*) FROM job_entries GROUP BY source;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			source string
			n      int
		)
		if err := rows.Scan(&source, &n); err != nil {
			return nil, err
		}
		out[source] = n
	}
	return out, rows.Err()
}
