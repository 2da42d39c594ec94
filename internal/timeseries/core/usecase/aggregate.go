package usecase

import (
	"time"

	"dashboard-analytics-service/internal/timeseries/core/calendar"
	"dashboard-analytics-service/internal/timeseries/core/domain"
)

// Aggregate bins records into the full period grid between start and end.
// Every grid period is emitted, empty ones with a zero count. Records outside
// [start, end] are not counted. Buckets are left-closed: a record on a
// boundary belongs to the period it opens.
func Aggregate(records []domain.Record, start, end time.Time, g domain.Granularity) []domain.Bucket {
	loc := start.Location()

	counts := make(map[int64]int64)
	for _, r := range records {
		if r.Time.Before(start) || r.Time.After(end) {
			continue
		}
		key := calendar.Floor(r.Time.In(loc), g)
		counts[key.UnixNano()]++
	}

	grid := calendar.Grid(start, end, g)
	buckets := make([]domain.Bucket, 0, len(grid))
	for _, t := range grid {
		buckets = append(buckets, domain.Bucket{
			PeriodStart: t,
			Label:       calendar.Label(t, g),
			Count:       counts[t.UnixNano()],
		})
	}
	return buckets
}
