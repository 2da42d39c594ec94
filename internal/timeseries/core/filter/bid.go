package filter

// Bid record fields.
const (
	FieldFulfilled  = "fulfil"
	FieldFulfilTime = "fulfil_time"
)

// BidAttributes are the columns materialized for bid records.
var BidAttributes = []string{FieldFulfilled, FieldFulfilTime}
