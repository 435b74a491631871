package schema

import (
	"fmt"
	"strings"
)

type CaseCategory string

const (
	CaseCategoryNew               CaseCategory = "NEW"
	CaseCategoryPreviouslyTreated CaseCategory = "PREVIOUSLY_TREATED"
)

var CaseCategories = []CaseCategory{
	CaseCategoryNew,
	CaseCategoryPreviouslyTreated,
}

// ParseCaseCategory accepts the canonical tokens as well as their human
// labels, e.g. "New" or "previously-treated".
func ParseCaseCategory(s string) (CaseCategory, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	token = strings.NewReplacer(" ", "_", "-", "_").Replace(token)
	switch CaseCategory(token) {
	case CaseCategoryNew:
		return CaseCategoryNew, nil
	case CaseCategoryPreviouslyTreated:
		return CaseCategoryPreviouslyTreated, nil
	}
	return "", fmt.Errorf("unknown case category %q", s)
}

func (c CaseCategory) MarshalText() ([]byte, error) {
	if _, err := ParseCaseCategory(string(c)); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

func (c *CaseCategory) UnmarshalText(text []byte) error {
	category, err := ParseCaseCategory(string(text))
	if err != nil {
		return err
	}
	*c = category
	return nil
}

// IncidenceRecord is the estimated TB incidence of a single year.
type IncidenceRecord struct {
	Year        int      `json:"year" csv:"year"`
	Incidence   float64  `json:"incidence_per_100k" csv:"incidence_per_100k"`
	IncidenceLo *float64 `json:"incidence_low,omitempty" csv:"incidence_low,omitempty"`
	IncidenceHi *float64 `json:"incidence_high,omitempty" csv:"incidence_high,omitempty"`
}

// ResistanceRecord is the RR-TB prevalence of one case category in a single year.
type ResistanceRecord struct {
	Year       int          `json:"year" csv:"year"`
	Category   CaseCategory `json:"case_category" csv:"case_category"`
	Percentage float64      `json:"rr_tb_percentage" csv:"rr_tb_percentage"`
}
