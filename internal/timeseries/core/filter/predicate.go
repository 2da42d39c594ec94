// Package filter evaluates the record predicates the record store cannot
// push down. The store only answers a single range query on the timestamp
// field; every other constraint is checked here, in memory, against the
// materialized records.
package filter

import (
	"strconv"
	"strings"
	"time"

	"dashboard-analytics-service/internal/timeseries/core/domain"
)

// Predicate reports whether a record satisfies one constraint.
type Predicate interface {
	Match(r domain.Record) bool
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc func(r domain.Record) bool

func (f PredicateFunc) Match(r domain.Record) bool {
	return f(r)
}

// Apply returns the records that satisfy every predicate. Nil predicates are
// skipped. The input slice is never modified.
func Apply(records []domain.Record, preds ...Predicate) []domain.Record {
	active := preds[:0:0]
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if matchAll(r, active) {
			out = append(out, r)
		}
	}
	return out
}

func matchAll(r domain.Record, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Match(r) {
			return false
		}
	}
	return true
}

// In matches when the string attribute equals one of values (case-sensitive).
// An empty values list is an inactive predicate and returns nil.
func In(field string, values []string) Predicate {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return PredicateFunc(func(r domain.Record) bool {
		_, ok := set[String(r, field)]
		return ok
	})
}

// AtLeast matches when the numeric attribute is >= min. nil min is inactive.
func AtLeast(field string, min *float64) Predicate {
	if min == nil {
		return nil
	}
	bound := *min
	return PredicateFunc(func(r domain.Record) bool {
		return Number(r, field) >= bound
	})
}

// AtMost matches when the numeric attribute is <= max. nil max is inactive.
func AtMost(field string, max *float64) Predicate {
	if max == nil {
		return nil
	}
	bound := *max
	return PredicateFunc(func(r domain.Record) bool {
		return Number(r, field) <= bound
	})
}

// Is matches when the boolean attribute equals want. nil want is inactive.
func Is(field string, want *bool) Predicate {
	if want == nil {
		return nil
	}
	expected := *want
	return PredicateFunc(func(r domain.Record) bool {
		return Bool(r, field) == expected
	})
}

// Has matches when the attribute is present and non-nil.
func Has(field string) Predicate {
	return PredicateFunc(func(r domain.Record) bool {
		_, ok := r.Attr(field)
		return ok
	})
}

// String reads a string attribute; missing values read as "".
func String(r domain.Record, field string) string {
	v, ok := r.Attr(field)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return ""
	}
}

// Number reads a numeric attribute; missing or unparseable values read as 0.
func Number(r domain.Record, field string) float64 {
	v, ok := r.Attr(field)
	if !ok {
		return 0
	}
	f, _ := ToFloat(v)
	return f
}

// ToFloat converts the numeric shapes returned by database drivers.
// Postgres NUMERIC columns arrive as []byte.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Time reads a timestamp attribute. Only driver-decoded time.Time values
// count; ok is false for anything else or the zero time.
func Time(r domain.Record, field string) (time.Time, bool) {
	v, ok := r.Attr(field)
	if !ok {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// Bool reads a boolean attribute; missing values read as false.
// SQLite stores booleans as 0/1 integers.
func Bool(r domain.Record, field string) bool {
	v, ok := r.Attr(field)
	if !ok {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case int:
		return x != 0
	case []byte:
		b, _ := strconv.ParseBool(string(x))
		return b
	case string:
		b, _ := strconv.ParseBool(x)
		return b
	default:
		return false
	}
}
