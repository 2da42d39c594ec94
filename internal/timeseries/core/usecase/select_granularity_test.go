package usecase

import (
	"testing"
	"time"

	"dashboard-analytics-service/internal/timeseries/core/domain"
)

func TestSelectGranularity_Tiers(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		span time.Duration
		want domain.Granularity
	}{
		{time.Hour, domain.GranularityHourly},
		{day, domain.GranularityHourly},
		{2*day - time.Second, domain.GranularityHourly},
		{2 * day, domain.GranularityDaily},
		{14 * day, domain.GranularityDaily},
		{15 * day, domain.GranularityWeekly},
		{90 * day, domain.GranularityWeekly},
		{91 * day, domain.GranularityMonthly},
		{730 * day, domain.GranularityMonthly},
		{731 * day, domain.GranularityQuarterly},
		{1825 * day, domain.GranularityQuarterly},
		{1826 * day, domain.GranularityYearly},
	}

	for _, tt := range tests {
		got := SelectGranularity(start, start.Add(tt.span), "")
		if got != tt.want {
			t.Fatalf("span %s: expected %s, got %s", tt.span, tt.want, got)
		}
	}
}

func TestSelectGranularity_OverrideAlwaysWins(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, span := range []time.Duration{time.Hour, 10 * day, 400 * day, 3000 * day} {
		for _, g := range domain.Granularities {
			if got := SelectGranularity(start, start.Add(span), g); got != g {
				t.Fatalf("span %s override %s: got %s", span, g, got)
			}
		}
	}
}
