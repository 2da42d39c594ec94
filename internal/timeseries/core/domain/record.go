package domain

import "time"

// Record is one materialized row of a record collection.
// Time holds the value of the collection's timestamp field; Attrs holds every
// other column keyed by field name. Records are read-only to the engine.
type Record struct {
	ID    string
	Time  time.Time
	Attrs map[string]any
}

// Attr returns the raw attribute value and whether it was present and non-nil.
func (r Record) Attr(field string) (any, bool) {
	v, ok := r.Attrs[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
