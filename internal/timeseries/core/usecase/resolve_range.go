package usecase

import (
	"time"

	"dashboard-analytics-service/internal/timeseries/core/calendar"
	"dashboard-analytics-service/internal/timeseries/core/domain"
)

const dateLayout = "2006-01-02"

// ResolveRange turns a range token into concrete [start, end] instants.
// Relative tokens end at now. Custom ranges are read in now's location and
// cover the end date entirely.
func ResolveRange(now time.Time, tr domain.TimeRange, startDate, endDate string) (time.Time, time.Time, error) {
	if tr == domain.TimeRangeCustom {
		return resolveCustom(now.Location(), startDate, endDate)
	}

	off, ok := tr.Offset()
	if !ok {
		return time.Time{}, time.Time{}, &domain.InvalidRangeError{Reason: "unknown time_range " + quote(string(tr))}
	}

	return calendar.Subtract(now, off), now, nil
}

func resolveCustom(loc *time.Location, startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, &domain.InvalidRangeError{Reason: "start_date and end_date are required for a custom time_range"}
	}

	start, err := time.ParseInLocation(dateLayout, startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, &domain.InvalidRangeError{Reason: "invalid start_date " + quote(startDate) + ", use YYYY-MM-DD"}
	}
	endDay, err := time.ParseInLocation(dateLayout, endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, &domain.InvalidRangeError{Reason: "invalid end_date " + quote(endDate) + ", use YYYY-MM-DD"}
	}
	if endDay.Before(start) {
		return time.Time{}, time.Time{}, &domain.InvalidRangeError{Reason: "start_date is after end_date"}
	}

	end := endDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end, nil
}

func quote(s string) string {
	return "'" + s + "'"
}
