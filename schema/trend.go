package schema

// Tables holds both datasets of a region as they were loaded.
type Tables struct {
	Region     string
	Incidence  []IncidenceRecord
	Resistance []ResistanceRecord
}

// TrendRow is one year of the combined table. A nil pointer is a gap.
type TrendRow struct {
	Year                int      `json:"year" csv:"year"`
	Incidence           float64  `json:"incidence" csv:"incidence"`
	IncidenceLo         *float64 `json:"incidence_low" csv:"incidence_low"`
	IncidenceHi         *float64 `json:"incidence_high" csv:"incidence_high"`
	RRNew               *float64 `json:"rr_new" csv:"rr_new"`
	RRPreviouslyTreated *float64 `json:"rr_previously_treated" csv:"rr_previously_treated"`
}

// RR returns the resistance cell of the given category.
func (r TrendRow) RR(category CaseCategory) *float64 {
	switch category {
	case CaseCategoryNew:
		return r.RRNew
	case CaseCategoryPreviouslyTreated:
		return r.RRPreviouslyTreated
	}
	return nil
}
