package domain

import "time"

// Bucket is one aligned period of a series.
type Bucket struct {
	PeriodStart time.Time
	Label       string
	Count       int64
}

// Series is the aggregated result of one time-series request.
type Series struct {
	TimeRange   TimeRange
	Granularity Granularity
	Start       time.Time
	End         time.Time

	// Filters echoes the active attribute predicates, keyed by request parameter name.
	Filters map[string]any

	TotalRecords int64
	Buckets      []Bucket
}

func (s *Series) BucketCount() int {
	return len(s.Buckets)
}
