package fiber

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// SeriesQuery holds the range selection shared by every time-series route.
// Unknown time_range tokens and malformed dates are left to the range
// resolver so they surface as invalid_range.
type SeriesQuery struct {
	TimeRange string `query:"time_range"`
	Frequency string `query:"frequency" validate:"omitempty,oneof=hourly daily weekly monthly quarterly yearly"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type SeriesPointResponse struct {
	Period    string `json:"period" example:"2024-01-01 to 2024-01-07"`
	Count     int64  `json:"count" example:"12"`
	Timestamp int64  `json:"timestamp" example:"1704067200"`
}

// SeriesResponse is serialized with a per-entity total key, for example
// total_candidates or total_transactions.
type SeriesResponse struct {
	Entity     string                `json:"-"`
	Filters    map[string]any        `json:"filters"`
	DataPoints int                   `json:"data_points" example:"8"`
	Total      int64                 `json:"-"`
	Data       []SeriesPointResponse `json:"data"`
}

func (r SeriesResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	fields := []struct {
		key   string
		value any
	}{
		{"filters", r.Filters},
		{"data_points", r.DataPoints},
		{"total_" + r.Entity, r.Total},
		{"data", r.Data},
	}

	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_range"`
	Message string `json:"message" example:"invalid time range: start_date must be YYYY-MM-DD"`
}
