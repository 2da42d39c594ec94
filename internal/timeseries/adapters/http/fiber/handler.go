package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"dashboard-analytics-service/internal/timeseries/core/domain"
	"dashboard-analytics-service/internal/timeseries/core/filter"
	"dashboard-analytics-service/internal/timeseries/core/usecase"
	"dashboard-analytics-service/internal/validation"
)

const dateLayout = "2006-01-02"

// DefaultMaxHourlySpan bounds hourly series when SeriesConfig leaves it unset.
const DefaultMaxHourlySpan = 31 * 24 * time.Hour

type GetSeriesUseCase interface {
	Execute(ctx context.Context, in usecase.GetSeriesInput, spec filter.Spec) (*domain.Series, error)
}

type SeriesObserver interface {
	ObserveSeries(granularity string, buckets int)
}

// SeriesConfig binds one handler instance to an entity.
type SeriesConfig struct {
	// Entity names the total key of the response (total_<Entity>).
	Entity        string
	ParseFilters  FilterParser
	DefaultRange  domain.TimeRange
	// MaxHourlySpan rejects hourly requests whose resolved range is longer.
	MaxHourlySpan time.Duration
	Observer      SeriesObserver
	Logger        zerolog.Logger
}

type SeriesHandler struct {
	uc  GetSeriesUseCase
	cfg SeriesConfig
}

func NewSeriesHandler(uc GetSeriesUseCase, cfg SeriesConfig) *SeriesHandler {
	if cfg.ParseFilters == nil {
		cfg.ParseFilters = ParseTransactionFilter
	}
	if cfg.DefaultRange == "" {
		cfg.DefaultRange = domain.TimeRangeSevenDays
	}
	if cfg.MaxHourlySpan <= 0 {
		cfg.MaxHourlySpan = DefaultMaxHourlySpan
	}
	return &SeriesHandler{uc: uc, cfg: cfg}
}

// GetSeries godoc
// @Summary Time series of record counts
// @Description Counts records per calendar period over a relative or custom range. The total key is total_candidates or total_transactions. Attribute filters apply to candidates only.
// @Tags TimeSeries
// @Produce json
// @Param time_range query string false "1d | 7d | 1m | 3m | 6m | 1y | 2y | 5y | custom" default(7d)
// @Param frequency query string false "hourly | daily | weekly | monthly | quarterly | yearly"
// @Param start_date query string false "YYYY-MM-DD, required for custom"
// @Param end_date query string false "YYYY-MM-DD, required for custom"
// @Param roles query []string false "Candidate roles" collectionFormat(multi)
// @Param city query []string false "Candidate cities" collectionFormat(multi)
// @Param min_experience query number false "Minimum years of experience"
// @Param max_experience query number false "Maximum years of experience"
// @Param min_ctc query number false "Minimum CTC"
// @Param max_ctc query number false "Maximum CTC"
// @Param sold query boolean false "Sold status"
// @Success 200 {object} SeriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /candidates/time-series [get]
// @Router /transactions/time-series [get]
func (h *SeriesHandler) GetSeries(c *fiber.Ctx) error {
	var q SeriesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	}
	if err := validation.Struct(q); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	}

	spec, err := h.cfg.ParseFilters(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	}

	in := usecase.GetSeriesInput{
		TimeRange: domain.TimeRange(q.TimeRange),
		Frequency: domain.Granularity(q.Frequency),
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	}
	if in.TimeRange == "" {
		in.TimeRange = h.cfg.DefaultRange
	}
	if h.hourlySpanExceeded(in) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: fmt.Sprintf("hourly frequency is limited to ranges of %s", h.cfg.MaxHourlySpan),
		})
	}

	series, err := h.uc.Execute(c.UserContext(), in, spec)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_range",
				Message: err.Error(),
			})
		default:
			h.cfg.Logger.Error().Err(err).
				Str("entity", h.cfg.Entity).
				Msg("time series failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "internal_server_error",
				Message: err.Error(),
			})
		}
	}

	if h.cfg.Observer != nil {
		h.cfg.Observer.ObserveSeries(string(series.Granularity), series.BucketCount())
	}

	return c.Status(http.StatusOK).JSON(toSeriesResponse(h.cfg.Entity, series))
}

// hourlySpanExceeded reports whether an hourly request covers more than
// MaxHourlySpan. Ranges that do not resolve are left to the use case.
func (h *SeriesHandler) hourlySpanExceeded(in usecase.GetSeriesInput) bool {
	if in.Frequency != domain.GranularityHourly {
		return false
	}
	start, end, err := usecase.ResolveRange(time.Now().UTC(), in.TimeRange, in.StartDate, in.EndDate)
	if err != nil {
		return false
	}
	return end.Sub(start) > h.cfg.MaxHourlySpan
}

func toSeriesResponse(entity string, s *domain.Series) SeriesResponse {
	filters := map[string]any{
		"time_range": string(s.TimeRange),
		"frequency":  string(s.Granularity),
		"start_date": s.Start.Format(dateLayout),
		"end_date":   s.End.Format(dateLayout),
	}
	for k, v := range s.Filters {
		filters[k] = v
	}

	resp := SeriesResponse{
		Entity:     entity,
		Filters:    filters,
		DataPoints: s.BucketCount(),
		Total:      s.TotalRecords,
		Data:       make([]SeriesPointResponse, 0, len(s.Buckets)),
	}
	for _, b := range s.Buckets {
		resp.Data = append(resp.Data, SeriesPointResponse{
			Period:    b.Label,
			Count:     b.Count,
			Timestamp: b.PeriodStart.Unix(),
		})
	}
	return resp
}
