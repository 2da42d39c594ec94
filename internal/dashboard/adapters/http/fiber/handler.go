package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"dashboard-analytics-service/internal/dashboard/core/domain"
)

type SummaryUseCase interface {
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	Counts(ctx context.Context) (*domain.Counts, error)
	PriceSummary(ctx context.Context) (*domain.PriceSummary, error)
	ProfileAging(ctx context.Context) (*domain.ProfileAging, error)
	BidMetrics(ctx context.Context) (*domain.BidMetrics, error)
}

type DashboardHandler struct {
	uc  SummaryUseCase
	log zerolog.Logger
}

func NewDashboardHandler(uc SummaryUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetFilterOptions godoc
// @Summary Candidate filter options
// @Description Distinct roles and cities, and experience and CTC ranges over all candidates
// @Tags Dashboard
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Failure 500 {object} ErrorResponse
// @Router /candidates/filter-options [get]
func (h *DashboardHandler) GetFilterOptions(c *fiber.Ctx) error {
	opts, err := h.uc.FilterOptions(c.UserContext())
	if err != nil {
		return h.internalError(c, "filter options", err)
	}

	return c.Status(http.StatusOK).JSON(FilterOptionsResponse{
		Roles:           opts.Roles,
		City:            opts.Cities,
		ExperienceRange: RangeResponse{Min: opts.Experience.Min, Max: opts.Experience.Max},
		CTCRange:        RangeResponse{Min: opts.CTC.Min, Max: opts.CTC.Max},
	})
}

// GetCounts godoc
// @Summary Collection counts
// @Description Number of recruiters and candidates
// @Tags Dashboard
// @Produce json
// @Success 200 {object} CountsResponse
// @Failure 500 {object} ErrorResponse
// @Router /counts [get]
func (h *DashboardHandler) GetCounts(c *fiber.Ctx) error {
	counts, err := h.uc.Counts(c.UserContext())
	if err != nil {
		return h.internalError(c, "counts", err)
	}

	return c.Status(http.StatusOK).JSON(CountsResponse{
		RecruitersCount: counts.Recruiters,
		CandidatesCount: counts.Candidates,
	})
}

// GetPriceSummary godoc
// @Summary Sold candidate price summary
// @Description Min, max, mean and quartiles of the price of sold candidates
// @Tags Dashboard
// @Produce json
// @Success 200 {object} PriceSummaryResponse
// @Success 200 {object} MessageResponse "No sold candidates"
// @Failure 500 {object} ErrorResponse
// @Router /candidates/price-summary [get]
func (h *DashboardHandler) GetPriceSummary(c *fiber.Ctx) error {
	s, err := h.uc.PriceSummary(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrNoSoldCandidates) {
			return c.Status(http.StatusOK).JSON(MessageResponse{
				Message: "No data found for sold candidates",
			})
		}
		return h.internalError(c, "price summary", err)
	}

	return c.Status(http.StatusOK).JSON(PriceSummaryResponse{
		Min:  s.Min,
		Max:  s.Max,
		Mean: s.Mean,
		P25:  s.P25,
		P75:  s.P75,
	})
}

// GetProfileAging godoc
// @Summary Average profile aging
// @Description Mean whole days since registration of unsold candidates
// @Tags Dashboard
// @Produce json
// @Success 200 {object} ProfileAgingResponse
// @Failure 500 {object} ErrorResponse
// @Router /candidates/average-profile-aging [get]
func (h *DashboardHandler) GetProfileAging(c *fiber.Ctx) error {
	aging, err := h.uc.ProfileAging(c.UserContext())
	if err != nil {
		return h.internalError(c, "profile aging", err)
	}

	return c.Status(http.StatusOK).JSON(ProfileAgingResponse{
		AverageProfileAgingDays: aging.AverageDays,
	})
}

// GetBidMetrics godoc
// @Summary Bid metrics
// @Description Total and fulfilled bids with the average fulfilment time in days
// @Tags Dashboard
// @Produce json
// @Success 200 {object} BidMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /bids/metrics [get]
func (h *DashboardHandler) GetBidMetrics(c *fiber.Ctx) error {
	m, err := h.uc.BidMetrics(c.UserContext())
	if err != nil {
		return h.internalError(c, "bid metrics", err)
	}

	return c.Status(http.StatusOK).JSON(BidMetricsResponse{
		TotalBids:          m.Total,
		FulfilledBids:      m.Fulfilled,
		AvgFulfillTimeDays: m.AvgFulfillDays,
	})
}

func (h *DashboardHandler) internalError(c *fiber.Ctx, op string, err error) error {
	h.log.Error().Err(err).Str("op", op).Msg("dashboard summary failed")
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_server_error",
		Message: err.Error(),
	})
}
