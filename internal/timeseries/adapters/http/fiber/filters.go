package fiber

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dashboard-analytics-service/internal/timeseries/core/filter"
)

var ErrInvalidParam = errors.New("invalid query parameter")

// FilterParser reads the entity-specific attribute filters of a request.
type FilterParser func(c *fiber.Ctx) (filter.Spec, error)

// ParseTransactionFilter accepts no attribute filters.
func ParseTransactionFilter(*fiber.Ctx) (filter.Spec, error) {
	return filter.TransactionFilter{}, nil
}

// ParseCandidateFilter reads roles and city as repeated parameters
// (?roles=a&roles=b) plus the numeric bounds and the sold flag.
func ParseCandidateFilter(c *fiber.Ctx) (filter.Spec, error) {
	var (
		f   filter.CandidateFilter
		err error
	)

	f.Roles = multi(c, "roles")
	f.Cities = multi(c, "city")

	if f.MinExperience, err = optFloat(c, "min_experience"); err != nil {
		return nil, err
	}
	if f.MaxExperience, err = optFloat(c, "max_experience"); err != nil {
		return nil, err
	}
	if f.MinCTC, err = optFloat(c, "min_ctc"); err != nil {
		return nil, err
	}
	if f.MaxCTC, err = optFloat(c, "max_ctc"); err != nil {
		return nil, err
	}
	if f.Sold, err = optBool(c, "sold"); err != nil {
		return nil, err
	}

	return f, nil
}

func multi(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		if len(raw) > 0 {
			out = append(out, string(raw))
		}
	}
	return out
}

func optFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", ErrInvalidParam, key)
	}
	return &v, nil
}

func optBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", ErrInvalidParam, key)
	}
	return &v, nil
}
