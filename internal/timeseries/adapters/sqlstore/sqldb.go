package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SQLOption configures the database/sql adapter.
type SQLOption func(*sqlDB)

// WithSlowQueryLog logs at warn every query whose rows stay open longer than
// threshold, measured from QueryContext to Close. A zero threshold disables it.
func WithSlowQueryLog(log zerolog.Logger, threshold time.Duration) SQLOption {
	return func(s *sqlDB) {
		s.log = log.With().Str("component", "sql").Logger()
		s.slow = threshold
	}
}

type sqlRows struct {
	rows    *sql.Rows
	owner   *sqlDB
	query   string
	started time.Time
	scanned int
	closed  bool
}

func (r *sqlRows) Next() bool {
	if !r.rows.Next() {
		return false
	}
	r.scanned++
	return true
}

func (r *sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *sqlRows) Err() error {
	return r.rows.Err()
}

func (r *sqlRows) Close() error {
	err := r.rows.Close()
	if !r.closed {
		r.closed = true
		r.owner.logSlow(r.query, time.Since(r.started), r.scanned)
	}
	return err
}

type sqlDB struct {
	db   *sql.DB
	log  zerolog.Logger
	slow time.Duration
}

func NewSQLDB(db *sql.DB, opts ...SQLOption) DB {
	s := &sqlDB{db: db, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	started := time.Now()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &sqlRows{rows: rows, owner: s, query: query, started: started}, nil
}

func (s *sqlDB) logSlow(query string, elapsed time.Duration, rows int) {
	if s.slow <= 0 || elapsed < s.slow {
		return
	}
	s.log.Warn().
		Str("query", strings.Join(strings.Fields(query), " ")).
		Dur("elapsed", elapsed).
		Int("rows", rows).
		Msg("slow store query")
}
