package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"dashboard-analytics-service/internal/dashboard/core/domain"
	tsdomain "dashboard-analytics-service/internal/timeseries/core/domain"
	"dashboard-analytics-service/internal/timeseries/core/filter"
	"dashboard-analytics-service/internal/timeseries/core/ports"
)

// Collections names the record collections the summaries read.
type Collections struct {
	Candidates ports.Collection
	Recruiters ports.Collection
	Bids       ports.Collection
}

// SummaryUseCase computes the whole-collection dashboard summaries.
type SummaryUseCase struct {
	store ports.CollectionScanner
	cols  Collections
	now   func() time.Time
	log   zerolog.Logger
}

func NewSummaryUseCase(store ports.CollectionScanner, cols Collections, now func() time.Time, log zerolog.Logger) *SummaryUseCase {
	return &SummaryUseCase{
		store: store,
		cols:  cols,
		now:   now,
		log:   log.With().Str("component", "dashboard_summary").Logger(),
	}
}

func (uc *SummaryUseCase) scan(ctx context.Context, c ports.Collection, preds ...filter.Predicate) ([]tsdomain.Record, error) {
	records, err := uc.store.ScanAll(ctx, c)
	if err != nil {
		return nil, &tsdomain.StoreUnavailableError{Collection: c.Name, Cause: err}
	}
	return filter.Apply(records, preds...), nil
}

// FilterOptions returns the sorted distinct roles and cities and the
// experience and ctc ranges over all candidates. Empty ranges are 0..0.
func (uc *SummaryUseCase) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	records, err := uc.scan(ctx, uc.cols.Candidates)
	if err != nil {
		return nil, err
	}

	roles := map[string]struct{}{}
	cities := map[string]struct{}{}
	var experience, ctc []float64

	for _, r := range records {
		if v := filter.String(r, filter.FieldRole); v != "" {
			roles[v] = struct{}{}
		}
		if v := filter.String(r, filter.FieldCity); v != "" {
			cities[v] = struct{}{}
		}
		if v, ok := r.Attr(filter.FieldExperience); ok {
			if f, ok := filter.ToFloat(v); ok {
				experience = append(experience, f)
			}
		}
		if v, ok := r.Attr(filter.FieldCTC); ok {
			if f, ok := filter.ToFloat(v); ok {
				ctc = append(ctc, f)
			}
		}
	}

	return &domain.FilterOptions{
		Roles:      sortedKeys(roles),
		Cities:     sortedKeys(cities),
		Experience: span(experience),
		CTC:        span(ctc),
	}, nil
}

// Counts returns the record counts of the recruiters and candidates collections.
func (uc *SummaryUseCase) Counts(ctx context.Context) (*domain.Counts, error) {
	recruiters, err := uc.store.Count(ctx, uc.cols.Recruiters)
	if err != nil {
		return nil, &tsdomain.StoreUnavailableError{Collection: uc.cols.Recruiters.Name, Cause: err}
	}
	candidates, err := uc.store.Count(ctx, uc.cols.Candidates)
	if err != nil {
		return nil, &tsdomain.StoreUnavailableError{Collection: uc.cols.Candidates.Name, Cause: err}
	}
	return &domain.Counts{Recruiters: recruiters, Candidates: candidates}, nil
}

// PriceSummary summarizes the price of sold candidates that carry one.
func (uc *SummaryUseCase) PriceSummary(ctx context.Context) (*domain.PriceSummary, error) {
	sold := true
	records, err := uc.scan(ctx, uc.cols.Candidates,
		filter.Is(filter.FieldSold, &sold),
		filter.Has(filter.FieldPrice),
	)
	if err != nil {
		return nil, err
	}

	prices := make([]float64, 0, len(records))
	for _, r := range records {
		v, _ := r.Attr(filter.FieldPrice)
		if f, ok := filter.ToFloat(v); ok {
			prices = append(prices, f)
		}
	}
	if len(prices) == 0 {
		return nil, domain.ErrNoSoldCandidates
	}

	sort.Float64s(prices)
	return &domain.PriceSummary{
		Min:  floats.Min(prices),
		Max:  floats.Max(prices),
		Mean: stat.Mean(prices, nil),
		P25:  percentile(prices, 0.25),
		P75:  percentile(prices, 0.75),
		N:    len(prices),
	}, nil
}

// ProfileAging averages the whole days elapsed since created_at over unsold
// candidates. Profiles without a creation time are not counted.
func (uc *SummaryUseCase) ProfileAging(ctx context.Context) (*domain.ProfileAging, error) {
	unsold := false
	records, err := uc.scan(ctx, uc.cols.Candidates,
		filter.Has(filter.FieldSold),
		filter.Is(filter.FieldSold, &unsold),
	)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	ages := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Time.IsZero() {
			continue
		}
		ages = append(ages, float64(wholeDays(now.Sub(r.Time))))
	}

	out := &domain.ProfileAging{Profiles: len(ages)}
	if len(ages) > 0 {
		out.AverageDays = stat.Mean(ages, nil)
	}

	uc.log.Debug().Int("profiles", out.Profiles).Float64("average_days", out.AverageDays).Msg("profile aging computed")
	return out, nil
}

// BidMetrics counts bids and averages, in days rounded to two decimals,
// the time from creation to fulfilment of fulfilled bids carrying both
// timestamps.
func (uc *SummaryUseCase) BidMetrics(ctx context.Context) (*domain.BidMetrics, error) {
	bids, err := uc.scan(ctx, uc.cols.Bids)
	if err != nil {
		return nil, err
	}

	fulfilled := true
	done := filter.Apply(bids, filter.Is(filter.FieldFulfilled, &fulfilled))

	secs := make([]float64, 0, len(done))
	for _, r := range done {
		at, ok := filter.Time(r, filter.FieldFulfilTime)
		if !ok || r.Time.IsZero() {
			continue
		}
		secs = append(secs, at.Sub(r.Time).Seconds())
	}

	out := &domain.BidMetrics{
		Total:     int64(len(bids)),
		Fulfilled: int64(len(done)),
	}
	if len(secs) > 0 {
		days := stat.Mean(secs, nil) / (24 * time.Hour).Seconds()
		out.AvgFulfillDays = math.Round(days*100) / 100
	}
	return out, nil
}

// percentile interpolates linearly between the closest ranks of sorted
// values at h = (n-1)p.
func percentile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(h)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// wholeDays floors d to days, rounding toward negative infinity.
func wholeDays(d time.Duration) int64 {
	days := int64(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}

func span(values []float64) domain.Range {
	if len(values) == 0 {
		return domain.Range{}
	}
	return domain.Range{Min: floats.Min(values), Max: floats.Max(values)}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
