package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"dashboard-analytics-service/internal/timeseries/core/domain"
	"dashboard-analytics-service/internal/timeseries/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// QueryObserver receives the outcome of every store query.
type QueryObserver interface {
	ObserveStoreQuery(collection, operation string, elapsed time.Duration, err error)
}

// Dialect selects the bind parameter syntax of the underlying driver.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

const idColumn = "id"

// Repository is the record store over database/sql.
type Repository struct {
	db       DB
	dialect  Dialect
	log      zerolog.Logger
	observer QueryObserver
}

func NewRepository(db DB, dialect Dialect, log zerolog.Logger, observer QueryObserver) *Repository {
	return &Repository{
		db:       db,
		dialect:  dialect,
		log:      log.With().Str("component", "record_store").Logger(),
		observer: observer,
	}
}

var (
	_ ports.RangeQueryable    = (*Repository)(nil)
	_ ports.CollectionScanner = (*Repository)(nil)
)

// QueryRange issues the single pushdown query:
// timestamp >= start AND timestamp <= end.
func (r *Repository) QueryRange(ctx context.Context, c ports.Collection, start, end time.Time) (records []domain.Record, err error) {
	defer r.observe(c.Name, "query_range", time.Now(), &err)

	ts := pq.QuoteIdentifier(c.TimestampField)
	query := fmt.Sprintf("%s\nWHERE %s >= %s AND %s <= %s",
		selectColumns(c), ts, r.dialect.placeholder(1), ts, r.dialect.placeholder(2))

	rows, err := r.db.QueryContext(ctx, query, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRecords(rows, c, false)
}

// ScanAll reads every record of the collection.
func (r *Repository) ScanAll(ctx context.Context, c ports.Collection) (records []domain.Record, err error) {
	defer r.observe(c.Name, "scan_all", time.Now(), &err)

	rows, err := r.db.QueryContext(ctx, selectColumns(c))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRecords(rows, c, true)
}

func (r *Repository) Count(ctx context.Context, c ports.Collection) (total int64, err error) {
	defer r.observe(c.Name, "count", time.Now(), &err)

	rows, err := r.db.QueryContext(ctx, "SELECT COUNT(*) FROM "+pq.QuoteIdentifier(c.Table))
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

func selectColumns(c ports.Collection) string {
	cols := make([]string, 0, len(c.Attributes)+2)
	cols = append(cols, pq.QuoteIdentifier(idColumn), pq.QuoteIdentifier(c.TimestampField))
	for _, a := range c.Attributes {
		cols = append(cols, pq.QuoteIdentifier(a))
	}
	return "SELECT " + strings.Join(cols, ", ") + "\nFROM " + pq.QuoteIdentifier(c.Table)
}

// scanRecords materializes rows as id, timestamp, attributes...
// Rows without a usable timestamp are skipped and logged unless keepUntimed.
func (r *Repository) scanRecords(rows RowScanner, c ports.Collection, keepUntimed bool) ([]domain.Record, error) {
	width := len(c.Attributes) + 2

	var (
		records []domain.Record
		skipped int
	)
	for rows.Next() {
		values := make([]any, width)
		dest := make([]any, width)
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		rec := domain.Record{
			ID:    toID(values[0]),
			Attrs: make(map[string]any, len(c.Attributes)),
		}

		ts, ok := toTime(values[1])
		if !ok && !keepUntimed {
			skipped++
			r.log.Warn().
				Str("collection", c.Name).
				Str("id", rec.ID).
				Str("field", c.TimestampField).
				Msg("record skipped: missing or unparseable timestamp")
			continue
		}
		rec.Time = ts

		for i, name := range c.Attributes {
			rec.Attrs[name] = values[i+2]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if skipped > 0 {
		r.log.Debug().Str("collection", c.Name).Int("skipped", skipped).Int("kept", len(records)).Msg("records materialized")
	}
	return records, nil
}

func (r *Repository) observe(collection, operation string, started time.Time, err *error) {
	if r.observer == nil {
		return
	}
	var cause error
	if err != nil && *err != nil && !errors.Is(*err, context.Canceled) {
		cause = *err
	}
	r.observer.ObserveStoreQuery(collection, operation, time.Since(started), cause)
}
