package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"dashboard-analytics-service/internal/timeseries/core/domain"
	"dashboard-analytics-service/internal/timeseries/core/filter"
	"dashboard-analytics-service/internal/timeseries/core/ports"
)

type GetSeriesInput struct {
	TimeRange domain.TimeRange
	Frequency domain.Granularity // "" selects from the range span
	StartDate string             // YYYY-MM-DD, custom only
	EndDate   string             // YYYY-MM-DD, custom only
}

// Clock returns the current instant in the dashboard's location.
type Clock func() time.Time

// GetSeriesUseCase builds a period-bucketed series for one record collection.
// It holds no per-request state and is safe for concurrent use.
type GetSeriesUseCase struct {
	store      ports.RangeQueryable
	collection ports.Collection
	now        Clock
	log        zerolog.Logger
}

func NewGetSeriesUseCase(store ports.RangeQueryable, collection ports.Collection, now Clock, log zerolog.Logger) *GetSeriesUseCase {
	return &GetSeriesUseCase{
		store:      store,
		collection: collection,
		now:        now,
		log:        log.With().Str("collection", collection.Name).Logger(),
	}
}

func (uc *GetSeriesUseCase) Collection() ports.Collection {
	return uc.collection
}

// Execute runs range resolution, granularity selection, the range query,
// in-memory filtering and binning, in that order.
func (uc *GetSeriesUseCase) Execute(ctx context.Context, in GetSeriesInput, spec filter.Spec) (*domain.Series, error) {
	if spec == nil {
		spec = filter.None{}
	}

	start, end, err := ResolveRange(uc.now(), in.TimeRange, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	g := SelectGranularity(start, end, in.Frequency)

	records, err := uc.store.QueryRange(ctx, uc.collection, start, end)
	if err != nil {
		return nil, &domain.StoreUnavailableError{Collection: uc.collection.Name, Cause: err}
	}

	matched := filter.Apply(records, spec.Predicates()...)
	buckets := Aggregate(matched, start, end, g)

	var total int64
	for _, b := range buckets {
		total += b.Count
	}

	uc.log.Debug().
		Str("time_range", string(in.TimeRange)).
		Str("granularity", string(g)).
		Int("fetched", len(records)).
		Int("matched", len(matched)).
		Int("buckets", len(buckets)).
		Msg("series aggregated")

	return &domain.Series{
		TimeRange:    in.TimeRange,
		Granularity:  g,
		Start:        start,
		End:          end,
		Filters:      spec.Active(),
		TotalRecords: total,
		Buckets:      buckets,
	}, nil
}
