package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"saju/internal/solarterm"
)

// Postgres persists solar-term events in PostgreSQL. The store is pure I/O;
// all calendrical interpretation belongs to the engine.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed solar-term store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the solar_terms table when missing.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS solar_terms (
			id   SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			at   TIMESTAMPTZ NOT NULL,
			UNIQUE (name, kind, at)
		);
		CREATE INDEX IF NOT EXISTS solar_terms_kind_at_idx ON solar_terms (kind, at);
	`)
	if err != nil {
		return fmt.Errorf("ensure solar_terms schema: %w", err)
	}
	return nil
}

func (s *Postgres) LatestBefore(ctx context.Context, kind solarterm.Kind, at time.Time) (solarterm.Event, error) {
	query := `
		SELECT name, kind, at
		FROM solar_terms
		WHERE kind = $1 AND at < $2
		ORDER BY at DESC
		LIMIT 1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, string(kind), at))
}

func (s *Postgres) EarliestAfter(ctx context.Context, kind solarterm.Kind, at time.Time) (solarterm.Event, error) {
	query := `
		SELECT name, kind, at
		FROM solar_terms
		WHERE kind = $1 AND at > $2
		ORDER BY at ASC
		LIMIT 1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, string(kind), at))
}

func (s *Postgres) AllOfKindInYear(ctx context.Context, kind solarterm.Kind, year int) ([]solarterm.Event, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(1, 0, 0)
	query := `
		SELECT name, kind, at
		FROM solar_terms
		WHERE kind = $1 AND at >= $2 AND at < $3
		ORDER BY at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, string(kind), from, until)
	if err != nil {
		return nil, fmt.Errorf("query solar terms in year: %w", err)
	}
	defer rows.Close()

	var out []solarterm.Event
	for rows.Next() {
		var ev solarterm.Event
		var k string
		if err := rows.Scan(&ev.Name, &k, &ev.At); err != nil {
			return nil, fmt.Errorf("scan solar term: %w", err)
		}
		ev.Kind = solarterm.Kind(k)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solar terms: %w", err)
	}
	return out, nil
}

// Insert bulk-loads events, skipping duplicates.
func (s *Postgres) Insert(ctx context.Context, events []solarterm.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert solar terms: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO solar_terms (name, kind, at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, kind, at) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("prepare insert solar terms: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.ExecContext(ctx, ev.Name, string(ev.Kind), ev.At); err != nil {
			return fmt.Errorf("insert solar term %s: %w", ev.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert solar terms: %w", err)
	}
	return nil
}

func (s *Postgres) scanOne(row *sql.Row) (solarterm.Event, error) {
	var ev solarterm.Event
	var k string
	if err := row.Scan(&ev.Name, &k, &ev.At); err != nil {
		if err == sql.ErrNoRows {
			return solarterm.Event{}, solarterm.ErrNotFound
		}
		return solarterm.Event{}, fmt.Errorf("scan solar term: %w", err)
	}
	ev.Kind = solarterm.Kind(k)
	return ev, nil
}
