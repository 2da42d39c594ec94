package domain

// TimeRange is the symbolic window selector sent by dashboard clients.
type TimeRange string

const (
	TimeRangeOneDay      TimeRange = "1d"
	TimeRangeSevenDays   TimeRange = "7d"
	TimeRangeOneMonth    TimeRange = "1m"
	TimeRangeThreeMonths TimeRange = "3m"
	TimeRangeSixMonths   TimeRange = "6m"
	TimeRangeOneYear     TimeRange = "1y"
	TimeRangeTwoYears    TimeRange = "2y"
	TimeRangeFiveYears   TimeRange = "5y"
	TimeRangeCustom      TimeRange = "custom"
)

// Offset is a calendar offset (years, months, days) subtracted from "now".
type Offset struct {
	Years  int
	Months int
	Days   int
}

var rangeOffsets = map[TimeRange]Offset{
	TimeRangeOneDay:      {Days: 1},
	TimeRangeSevenDays:   {Days: 7},
	TimeRangeOneMonth:    {Months: 1},
	TimeRangeThreeMonths: {Months: 3},
	TimeRangeSixMonths:   {Months: 6},
	TimeRangeOneYear:     {Years: 1},
	TimeRangeTwoYears:    {Years: 2},
	TimeRangeFiveYears:   {Years: 5},
}

// Offset returns the calendar offset of a relative token. ok is false for
// custom and unknown tokens.
func (tr TimeRange) Offset() (Offset, bool) {
	o, ok := rangeOffsets[tr]
	return o, ok
}

func (tr TimeRange) Valid() bool {
	if tr == TimeRangeCustom {
		return true
	}
	_, ok := rangeOffsets[tr]
	return ok
}
