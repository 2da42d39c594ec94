package filter

// Spec is the per-entity set of optional predicates.
// Predicates returns only active predicates; Active echoes them keyed by
// request parameter name for the response metadata.
type Spec interface {
	Predicates() []Predicate
	Active() map[string]any
}

// None is a Spec without attribute predicates.
type None struct{}

func (None) Predicates() []Predicate { return nil }

func (None) Active() map[string]any { return map[string]any{} }
