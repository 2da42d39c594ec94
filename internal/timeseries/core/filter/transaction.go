package filter

// TransactionFilter is the filter set of the transactions series.
// Transactions are only bounded by time today.
type TransactionFilter struct {
	None
}

var _ Spec = TransactionFilter{}
