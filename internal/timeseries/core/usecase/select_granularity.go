package usecase

import (
	"time"

	"dashboard-analytics-service/internal/timeseries/core/domain"
)

const day = 24 * time.Hour

// granularityTiers maps the inclusive upper bound in whole days to a granularity.
var granularityTiers = []struct {
	maxDays int
	g       domain.Granularity
}{
	{1, domain.GranularityHourly},
	{14, domain.GranularityDaily},
	{90, domain.GranularityWeekly},
	{730, domain.GranularityMonthly},
	{1825, domain.GranularityQuarterly},
}

// SelectGranularity returns override when set, otherwise the granularity
// that fits the elapsed whole days between start and end.
func SelectGranularity(start, end time.Time, override domain.Granularity) domain.Granularity {
	if override != "" {
		return override
	}

	days := int(end.Sub(start) / day)
	for _, tier := range granularityTiers {
		if days <= tier.maxDays {
			return tier.g
		}
	}
	return domain.GranularityYearly
}
