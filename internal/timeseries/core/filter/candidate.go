package filter

// Candidate record fields.
const (
	FieldRole       = "role"
	FieldCity       = "city"
	FieldExperience = "experience"
	FieldCTC        = "ctc"
	FieldSold       = "sold"
	FieldPrice      = "price"
)

// CandidateAttributes are the columns materialized for candidate records.
var CandidateAttributes = []string{FieldRole, FieldCity, FieldExperience, FieldCTC, FieldSold, FieldPrice}

// CandidateFilter is the filter set of the candidate registrations series.
type CandidateFilter struct {
	Roles         []string
	Cities        []string
	MinExperience *float64
	MaxExperience *float64
	MinCTC        *float64
	MaxCTC        *float64
	Sold          *bool
}

var _ Spec = CandidateFilter{}

func (f CandidateFilter) Predicates() []Predicate {
	preds := []Predicate{
		In(FieldRole, f.Roles),
		In(FieldCity, f.Cities),
		AtLeast(FieldExperience, f.MinExperience),
		AtMost(FieldExperience, f.MaxExperience),
		AtLeast(FieldCTC, f.MinCTC),
		AtMost(FieldCTC, f.MaxCTC),
		Is(FieldSold, f.Sold),
	}

	active := preds[:0]
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	return active
}

func (f CandidateFilter) Active() map[string]any {
	out := map[string]any{}
	if len(f.Roles) > 0 {
		out["roles"] = f.Roles
	}
	if len(f.Cities) > 0 {
		out["city"] = f.Cities
	}
	if f.MinExperience != nil {
		out["min_experience"] = *f.MinExperience
	}
	if f.MaxExperience != nil {
		out["max_experience"] = *f.MaxExperience
	}
	if f.MinCTC != nil {
		out["min_ctc"] = *f.MinCTC
	}
	if f.MaxCTC != nil {
		out["max_ctc"] = *f.MaxCTC
	}
	if f.Sold != nil {
		out["sold"] = *f.Sold
	}
	return out
}
