// Package stats records bot usage events in Postgres. The store is
// optional: a nil *Store silently drops writes and reports empty
// summaries, so the bot runs fine with the database disabled.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bipuldey19/sportsonline/core/logger"
)

// Actions recorded per usage event.
const (
	ActionCommand = "command"
	ActionBrowse  = "browse"
	ActionWatch   = "watch"
)

type Store struct {
	db *sqlx.DB
}

// New wraps the shared connection. Returns nil when db is nil so
// callers can keep a single nil-safe handle.
func New(db *sqlx.DB) *Store {
	if db == nil {
		return nil
	}
	return &Store{db: db}
}

// SourceCount is one row of the usage summary.
type SourceCount struct {
	Source string `db:"source"`
	Events int64  `db:"events"`
	Users  int64  `db:"users"`
}

// Summary aggregates usage over a trailing window.
type Summary struct {
	Since     time.Time
	Total     int64
	BySources []SourceCount
}

// Record stores one usage event. Failures are logged, not returned:
// stats must never break a user interaction.
func (s *Store) Record(ctx context.Context, userID int64, source, action string) {
	if s == nil {
		return
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO usage_events (user_id, source, action) VALUES ($1, $2, $3)`,
		userID, source, action,
	)
	if err != nil {
		logger.STATS.Warn("usage event dropped",
			slog.String("event", "stats.record"),
			slog.String("source", source),
			slog.String("err", err.Error()),
		)
	}
}

// UsageSince aggregates events recorded after the cutoff.
func (s *Store) UsageSince(ctx context.Context, since time.Time) (Summary, error) {
	sum := Summary{Since: since}
	if s == nil {
		return sum, nil
	}

	rows := []SourceCount{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT source,
		        COUNT(*)               AS events,
		        COUNT(DISTINCT user_id) AS users
		   FROM usage_events
		  WHERE created_at >= $1
		  GROUP BY source
		  ORDER BY events DESC`,
		since,
	)
	if err != nil {
		return sum, fmt.Errorf("stats: usage summary: %w", err)
	}

	sum.BySources = rows
	for _, r := range rows {
		sum.Total += r.Events
	}
	return sum, nil
}
