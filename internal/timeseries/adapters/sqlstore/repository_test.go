package sqlstore

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"dashboard-analytics-service/internal/timeseries/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *any:
			*d = row.values[i]
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

// fakeObserver records ObserveStoreQuery calls.
type fakeObserver struct {
	operations []string
	errs       []error
}

func (f *fakeObserver) ObserveStoreQuery(collection, operation string, elapsed time.Duration, err error) {
	f.operations = append(f.operations, collection+"/"+operation)
	f.errs = append(f.errs, err)
}

var candidates = ports.Collection{
	Name:           "candidates",
	Table:          "candidates",
	TimestampField: "created_at",
	Attributes:     []string{"role", "ctc"},
}

// ------------------------------------------------------------
// RANGE QUERY (postgres dialect)
// ------------------------------------------------------------

func TestRepository_QueryRange_Postgres(t *testing.T) {
	t1 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{"c1", t1, "Backend", []byte("12.5")}},
					{values: []any{"c2", nil, "Frontend", 3.0}},
					{values: []any{int64(3), "2025-05-02 08:30:00", nil, nil}},
				},
			}, nil
		},
	}
	obs := &fakeObserver{}
	repo := NewRepository(db, DialectPostgres, zerolog.Nop(), obs)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC)

	records, err := repo.QueryRange(context.Background(), candidates, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `SELECT "id", "created_at", "role", "ctc"
FROM "candidates"
WHERE "created_at" >= $1 AND "created_at" <= $2`
	if db.lastQuery != want {
		t.Fatalf("unexpected query:\n%s", db.lastQuery)
	}
	if len(db.lastArgs) != 2 || db.lastArgs[0] != start || db.lastArgs[1] != end {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}

	// c2 has no timestamp and is skipped
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "c1" || !records[0].Time.Equal(t1) || records[0].Attrs["role"] != "Backend" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].ID != "3" || records[1].Time.Day() != 2 || records[1].Time.Hour() != 8 {
		t.Fatalf("unexpected second record: %+v", records[1])
	}

	if len(obs.operations) != 1 || obs.operations[0] != "candidates/query_range" || obs.errs[0] != nil {
		t.Fatalf("unexpected observations: %v %v", obs.operations, obs.errs)
	}
}

func TestRepository_QueryRange_LogsSkippedRecords(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{"c9", "not a time", "QA", 1.0}},
				},
			}, nil
		},
	}
	var buf bytes.Buffer
	repo := NewRepository(db, DialectPostgres, zerolog.New(&buf), nil)

	records, err := repo.QueryRange(context.Background(), candidates, time.Unix(0, 0), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, `"id":"c9"`) || !strings.Contains(out, `"collection":"candidates"`) {
		t.Fatalf("expected skip warning, got %q", out)
	}
}

// ------------------------------------------------------------
// RANGE QUERY (sqlite dialect)
// ------------------------------------------------------------

func TestRepository_QueryRange_SQLitePlaceholders(t *testing.T) {
	db := &fakeDB{}
	repo := NewRepository(db, DialectSQLite, zerolog.Nop(), nil)

	tx := ports.Collection{Name: "transactions", Table: "transactions", TimestampField: "timestamp"}
	records, err := repo.QueryRange(context.Background(), tx, time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if !strings.Contains(db.lastQuery, `WHERE "timestamp" >= ? AND "timestamp" <= ?`) {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
}

// ------------------------------------------------------------
// SCAN ALL keeps untimed rows
// ------------------------------------------------------------

func TestRepository_ScanAll(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if strings.Contains(query, "WHERE") {
				t.Fatalf("scan must not filter: %s", query)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{"c1", nil, "QA", int64(4)}},
				},
			}, nil
		},
	}
	repo := NewRepository(db, DialectPostgres, zerolog.Nop(), nil)

	records, err := repo.ScanAll(context.Background(), candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || !records[0].Time.IsZero() || records[0].Attrs["ctc"] != int64(4) {
		t.Fatalf("unexpected records: %+v", records)
	}
}

// ------------------------------------------------------------
// COUNT
// ------------------------------------------------------------

func TestRepository_Count(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if query != `SELECT COUNT(*) FROM "recruiters"` {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{rows: []fakeRow{{values: []any{int64(42)}}}}, nil
		},
	}
	repo := NewRepository(db, DialectPostgres, zerolog.Nop(), nil)

	n, err := repo.Count(context.Background(), ports.Collection{Name: "recruiters", Table: "recruiters"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Fatalf("expected 42, got %d", n)
	}
}

// ------------------------------------------------------------
// DB ERROR
// ------------------------------------------------------------

func TestRepository_DBError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db failure")
		},
	}
	obs := &fakeObserver{}
	repo := NewRepository(db, DialectPostgres, zerolog.Nop(), obs)

	res, err := repo.QueryRange(context.Background(), candidates, time.Now().Add(-time.Hour), time.Now())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result on error")
	}
	if len(obs.errs) != 1 || obs.errs[0] == nil {
		t.Fatalf("expected failed query to be observed, got %v", obs.errs)
	}
}

func TestRepository_RowsError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("stream broken")}, nil
		},
	}
	repo := NewRepository(db, DialectPostgres, zerolog.Nop(), nil)

	if _, err := repo.QueryRange(context.Background(), candidates, time.Now().Add(-time.Hour), time.Now()); err == nil {
		t.Fatalf("expected rows error to surface")
	}
}
