package ports

import (
	"context"
	"time"

	"dashboard-analytics-service/internal/timeseries/core/domain"
)

// Collection describes where a record class lives in the record store.
type Collection struct {
	Name           string   // logical name, e.g. "candidates"
	Table          string   // physical table
	TimestampField string   // e.g. "created_at" or "timestamp"
	Attributes     []string // extra fields materialized into Record.Attrs
}

// RangeQueryable is the only pushdown the record store offers: a single,
// inclusive range predicate on the collection's timestamp field.
// Results are unordered. Records without a usable timestamp are skipped.
// Everything else is evaluated in memory by the filter package.
type RangeQueryable interface {
	QueryRange(ctx context.Context, c Collection, start, end time.Time) ([]domain.Record, error)
}

// CollectionScanner reads whole collections for the dashboard summaries.
// Records without a timestamp are kept with a zero Time.
type CollectionScanner interface {
	ScanAll(ctx context.Context, c Collection) ([]domain.Record, error)
	Count(ctx context.Context, c Collection) (int64, error)
}
