package domain

import "errors"

// ErrNoSoldCandidates is returned by the price summary when no sold
// candidate carries a price.
var ErrNoSoldCandidates = errors.New("no data found for sold candidates")

type Range struct {
	Min float64
	Max float64
}

// FilterOptions lists the values a client can offer in the candidate filters.
type FilterOptions struct {
	Roles      []string
	Cities     []string
	Experience Range
	CTC        Range
}

type Counts struct {
	Recruiters int64
	Candidates int64
}

// PriceSummary describes the sale prices of sold candidates.
type PriceSummary struct {
	Min  float64
	Max  float64
	Mean float64
	P25  float64
	P75  float64
	N    int
}

// ProfileAging is the mean age in whole days of unsold candidate profiles.
type ProfileAging struct {
	AverageDays float64
	Profiles    int
}

// BidMetrics summarizes bids and how long fulfilled bids took.
type BidMetrics struct {
	Total          int64
	Fulfilled      int64
	AvgFulfillDays float64
}
