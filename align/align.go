package align

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/tbtrend/schema"
)

const logPrefix = "align"

// OrphanYearError - a resistance record refers to a year the incidence table
// does not have
type OrphanYearError struct {
	Year     int
	Category schema.CaseCategory
}

func (e *OrphanYearError) Error() string {
	return fmt.Sprintf("rr-tb prevalence of %s in %d has no incidence year to join", e.Category, e.Year)
}

// Align left joins the resistance records onto the incidence years and
// pivots case categories into columns. Rows are sorted by year. A year
// without a value for a category keeps a nil cell.
func Align(incidence []schema.IncidenceRecord, resistance []schema.ResistanceRecord) ([]schema.TrendRow, error) {
	rows := make([]schema.TrendRow, len(incidence))
	index := make(map[int]int, len(incidence))
	for i, r := range incidence {
		rows[i] = schema.TrendRow{
			Year:        r.Year,
			Incidence:   r.Incidence,
			IncidenceLo: copyValue(r.IncidenceLo),
			IncidenceHi: copyValue(r.IncidenceHi),
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Year < rows[j].Year
	})
	for i, r := range rows {
		index[r.Year] = i
	}

	for _, r := range resistance {
		i, ok := index[r.Year]
		if !ok {
			return nil, &OrphanYearError{Year: r.Year, Category: r.Category}
		}

		v := r.Percentage
		switch r.Category {
		case schema.CaseCategoryNew:
			rows[i].RRNew = &v
		case schema.CaseCategoryPreviouslyTreated:
			rows[i].RRPreviouslyTreated = &v
		default:
			return nil, fmt.Errorf("unknown case category %q", r.Category)
		}
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"years":      len(rows),
		"resistance": len(resistance),
	}).Debug("aligned datasets")

	return rows, nil
}

// Gaps counts the nil cells of a category over the combined table.
func Gaps(rows []schema.TrendRow, category schema.CaseCategory) int {
	count := 0
	for _, r := range rows {
		if r.RR(category) == nil {
			count++
		}
	}
	return count
}

func copyValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
