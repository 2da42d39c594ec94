package domain

// Granularity is the bucket width used to partition a time range.
type Granularity string

const (
	GranularityHourly    Granularity = "hourly"
	GranularityDaily     Granularity = "daily"
	GranularityWeekly    Granularity = "weekly"
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
)

// Granularities lists every granularity from finest to coarsest.
var Granularities = []Granularity{
	GranularityHourly,
	GranularityDaily,
	GranularityWeekly,
	GranularityMonthly,
	GranularityQuarterly,
	GranularityYearly,
}

func (g Granularity) Valid() bool {
	for _, v := range Granularities {
		if g == v {
			return true
		}
	}
	return false
}
