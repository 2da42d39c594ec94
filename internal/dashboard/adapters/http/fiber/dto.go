package fiber

type RangeResponse struct {
	Min float64 `json:"min" example:"0"`
	Max float64 `json:"max" example:"12"`
}

type FilterOptionsResponse struct {
	Roles           []string      `json:"roles"`
	City            []string      `json:"city"`
	ExperienceRange RangeResponse `json:"experience_range"`
	CTCRange        RangeResponse `json:"ctc_range"`
}

type CountsResponse struct {
	RecruitersCount int64 `json:"recruiters_count" example:"12"`
	CandidatesCount int64 `json:"candidates_count" example:"340"`
}

type PriceSummaryResponse struct {
	Min  float64 `json:"min" example:"100"`
	Max  float64 `json:"max" example:"900"`
	Mean float64 `json:"mean" example:"420.5"`
	P25  float64 `json:"25th_percentile" example:"250"`
	P75  float64 `json:"75th_percentile" example:"600"`
}

type MessageResponse struct {
	Message string `json:"message" example:"No data found for sold candidates"`
}

type ProfileAgingResponse struct {
	AverageProfileAgingDays float64 `json:"average_profile_aging_days" example:"17.25"`
}

type BidMetricsResponse struct {
	TotalBids          int64   `json:"total_bids" example:"120"`
	FulfilledBids      int64   `json:"fulfilled_bids" example:"45"`
	AvgFulfillTimeDays float64 `json:"avg_fulfill_time_days" example:"2.35"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message" example:"record store unavailable"`
}
