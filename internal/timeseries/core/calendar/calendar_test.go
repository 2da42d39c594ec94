package calendar_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"dashboard-analytics-service/internal/timeseries/core/calendar"
	"dashboard-analytics-service/internal/timeseries/core/domain"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestFloor(t *testing.T) {
	// Thursday 2025-05-15 14:37
	ts := date(2025, time.May, 15, 14, 37)

	tests := []struct {
		g    domain.Granularity
		want time.Time
	}{
		{domain.GranularityHourly, date(2025, time.May, 15, 14, 0)},
		{domain.GranularityDaily, date(2025, time.May, 15, 0, 0)},
		{domain.GranularityWeekly, date(2025, time.May, 12, 0, 0)},
		{domain.GranularityMonthly, date(2025, time.May, 1, 0, 0)},
		{domain.GranularityQuarterly, date(2025, time.April, 1, 0, 0)},
		{domain.GranularityYearly, date(2025, time.January, 1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(string(tt.g), func(t *testing.T) {
			got := calendar.Floor(ts, tt.g)
			if !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestFloor_WeeklyEdges(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", date(2024, time.January, 1, 0, 0), date(2024, time.January, 1, 0, 0)},
		{"sunday goes back six days", date(2024, time.January, 7, 23, 59), date(2024, time.January, 1, 0, 0)},
		{"crosses year boundary", date(2025, time.January, 2, 8, 0), date(2024, time.December, 30, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.Floor(tt.in, domain.GranularityWeekly)
			if !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
			if got.Weekday() != time.Monday {
				t.Fatalf("expected monday, got %s", got.Weekday())
			}
		})
	}
}

func TestFloor_QuarterStarts(t *testing.T) {
	want := map[time.Month]time.Month{
		time.January: time.January, time.March: time.January,
		time.April: time.April, time.June: time.April,
		time.July: time.July, time.September: time.July,
		time.October: time.October, time.December: time.October,
	}
	for in, out := range want {
		got := calendar.Floor(date(2023, in, 20, 5, 0), domain.GranularityQuarterly)
		if got.Month() != out || got.Day() != 1 {
			t.Fatalf("month %s: expected %s 1, got %s", in, out, got)
		}
	}
}

func TestFloor_BoundaryOpensBucket(t *testing.T) {
	boundary := date(2024, time.March, 1, 0, 0)
	for _, g := range domain.Granularities {
		if g == domain.GranularityWeekly || g == domain.GranularityQuarterly || g == domain.GranularityYearly {
			continue
		}
		if got := calendar.Floor(boundary, g); !got.Equal(boundary) {
			t.Fatalf("%s: boundary %s floored to %s", g, boundary, got)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		g    domain.Granularity
		in   time.Time
		want string
	}{
		{domain.GranularityHourly, date(2025, time.January, 5, 9, 0), "2025-01-05 09:00"},
		{domain.GranularityDaily, date(2025, time.January, 5, 0, 0), "2025-01-05"},
		{domain.GranularityWeekly, date(2024, time.December, 30, 0, 0), "2024-12-30 to 2025-01-05"},
		{domain.GranularityMonthly, date(2025, time.January, 1, 0, 0), "Jan 2025"},
		{domain.GranularityQuarterly, date(2025, time.October, 1, 0, 0), "Q4 2025"},
		{domain.GranularityYearly, date(2025, time.January, 1, 0, 0), "2025"},
	}

	for _, tt := range tests {
		t.Run(string(tt.g), func(t *testing.T) {
			if got := calendar.Label(tt.in, tt.g); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNext_MonthlyHandlesVariableLengths(t *testing.T) {
	start := date(2024, time.January, 1, 0, 0)
	want := []time.Time{
		date(2024, time.February, 1, 0, 0),
		date(2024, time.March, 1, 0, 0),
		date(2024, time.April, 1, 0, 0),
	}

	cur := start
	for _, w := range want {
		cur = calendar.Next(cur, domain.GranularityMonthly)
		if !cur.Equal(w) {
			t.Fatalf("expected %s, got %s", w, cur)
		}
	}
}

func TestGrid_Completeness(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		g     domain.Granularity
		want  int
	}{
		{"hourly one day", date(2025, time.March, 1, 10, 30), date(2025, time.March, 2, 10, 30), domain.GranularityHourly, 25},
		{"daily seven days", date(2025, time.March, 1, 10, 30), date(2025, time.March, 8, 10, 30), domain.GranularityDaily, 8},
		{"weekly q1", date(2024, time.January, 1, 0, 0), date(2024, time.March, 31, 0, 0), domain.GranularityWeekly, 13},
		{"monthly leap year", date(2024, time.January, 31, 0, 0), date(2024, time.December, 31, 0, 0), domain.GranularityMonthly, 12},
		{"quarterly two years", date(2023, time.February, 10, 0, 0), date(2024, time.November, 2, 0, 0), domain.GranularityQuarterly, 8},
		{"yearly five years", date(2020, time.June, 1, 0, 0), date(2025, time.June, 1, 0, 0), domain.GranularityYearly, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := calendar.Grid(tt.start, tt.end, tt.g)
			if len(grid) != tt.want {
				t.Fatalf("expected %d boundaries, got %d", tt.want, len(grid))
			}
			if !grid[0].Equal(calendar.Floor(tt.start, tt.g)) {
				t.Fatalf("grid does not start at aligned start: %s", grid[0])
			}
			if !grid[len(grid)-1].Equal(calendar.Floor(tt.end, tt.g)) {
				t.Fatalf("grid does not end at aligned end: %s", grid[len(grid)-1])
			}
			for i := 1; i < len(grid); i++ {
				if !grid[i].After(grid[i-1]) {
					t.Fatalf("grid not strictly increasing at %d: %s !> %s", i, grid[i], grid[i-1])
				}
				if !calendar.Floor(grid[i], tt.g).Equal(grid[i]) {
					t.Fatalf("grid boundary %s is not aligned", grid[i])
				}
			}
		})
	}
}

func TestFloor_HourlyAcrossFallBack(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2024-11-03 01:00-02:00 local happens twice: EDT (05:00Z) then EST (06:00Z).
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2024, 11, 3, 5, 30, 0, 0, time.UTC), time.Date(2024, 11, 3, 5, 0, 0, 0, time.UTC)},
		{time.Date(2024, 11, 3, 6, 30, 0, 0, time.UTC), time.Date(2024, 11, 3, 6, 0, 0, 0, time.UTC)},
		{time.Date(2024, 11, 3, 7, 0, 0, 0, time.UTC), time.Date(2024, 11, 3, 7, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := calendar.Floor(tt.in.In(ny), domain.GranularityHourly)
		if !got.Equal(tt.want) {
			t.Fatalf("Floor(%s) = %s, want %s", tt.in, got.UTC(), tt.want)
		}
		if got.Location() != ny {
			t.Fatalf("Floor(%s) left location %s", tt.in, got.Location())
		}
	}

	start := time.Date(2024, 11, 3, 0, 0, 0, 0, ny)
	end := time.Date(2024, 11, 3, 3, 0, 0, 0, ny)
	if grid := calendar.Grid(start, end, domain.GranularityHourly); len(grid) != 5 {
		t.Fatalf("expected 5 hourly boundaries across fall-back, got %d", len(grid))
	}
}

func TestFloor_HourlyHalfHourOffset(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	got := calendar.Floor(time.Date(2025, 5, 15, 14, 45, 0, 0, kolkata), domain.GranularityHourly)
	want := time.Date(2025, 5, 15, 14, 0, 0, 0, kolkata)
	if !got.Equal(want) {
		t.Fatalf("Floor = %s, want %s", got, want)
	}
}

func TestGrid_StartAfterEnd(t *testing.T) {
	if grid := calendar.Grid(date(2025, time.May, 2, 0, 0), date(2025, time.May, 1, 0, 0), domain.GranularityDaily); len(grid) != 0 {
		t.Fatalf("expected empty grid, got %d", len(grid))
	}
}

func TestSubtract_ClampsDayOfMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		off  domain.Offset
		want time.Time
	}{
		{"same day of month", date(2025, time.May, 15, 12, 0), domain.Offset{Months: 1}, date(2025, time.April, 15, 12, 0)},
		{"march 31 minus one month", date(2024, time.March, 31, 8, 0), domain.Offset{Months: 1}, date(2024, time.February, 29, 8, 0)},
		{"leap day minus one year", date(2024, time.February, 29, 0, 0), domain.Offset{Years: 1}, date(2023, time.February, 28, 0, 0)},
		{"across year", date(2025, time.February, 10, 0, 0), domain.Offset{Months: 3}, date(2024, time.November, 10, 0, 0)},
		{"days", date(2025, time.March, 2, 6, 0), domain.Offset{Days: 7}, date(2025, time.February, 23, 6, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.Subtract(tt.in, tt.off); !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
