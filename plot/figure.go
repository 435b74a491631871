package plot

import (
	"math"

	"github.com/bitmark-inc/tbtrend/schema"
)

type Axis int

const (
	AxisIncidence Axis = iota
	AxisPercentage
)

const (
	SeriesIncidence           = "incidence"
	SeriesRRNew               = "rr_new"
	SeriesRRPreviouslyTreated = "rr_previously_treated"
)

const (
	colorIncidence           = "#2ca02c"
	colorRRPreviouslyTreated = "#ffbb78"
	colorRRNew               = "#ff7f0e"
)

// Labels are the user facing strings of a chart.
type Labels struct {
	Title               string
	Year                string
	IncidenceAxis       string
	PercentageAxis      string
	Incidence           string
	IncidenceLow        string
	IncidenceHigh       string
	RRNew               string
	RRPreviouslyTreated string
}

func DefaultLabels() Labels {
	return Labels{
		Title:               "Incidence vs. Resistance",
		Year:                "Year",
		IncidenceAxis:       "Incidence per 100 000",
		PercentageAxis:      "RR-TB (%)",
		Incidence:           "TB incidence",
		IncidenceLow:        "Uncertainty interval (low)",
		IncidenceHigh:       "Uncertainty interval (high)",
		RRNew:               "RR-TB, new cases",
		RRPreviouslyTreated: "RR-TB, previously treated",
	}
}

// Series holds one value per figure year, nil where the year has no data.
type Series struct {
	Key    string
	Name   string
	Axis   Axis
	Color  string
	Values []*float64
}

type Point struct {
	Year  int
	Value float64
}

// Band is the uncertainty interval around the incidence series. A year has
// either both bounds or none.
type Band struct {
	Lo []*float64
	Hi []*float64
}

type Interval struct {
	Year int
	Lo   float64
	Hi   float64
}

type Figure struct {
	Labels Labels
	Years  []int
	Series []Series

	// nil when no year has an interval
	Band *Band
}

// BuildFigure turns the combined table into chart series. A series without
// any value is left out.
func BuildFigure(rows []schema.TrendRow, labels Labels) Figure {
	fig := Figure{
		Labels: labels,
		Years:  make([]int, len(rows)),
	}

	incidence := Series{Key: SeriesIncidence, Name: labels.Incidence, Axis: AxisIncidence, Color: colorIncidence}
	rrNew := Series{Key: SeriesRRNew, Name: labels.RRNew, Axis: AxisPercentage, Color: colorRRNew}
	rrPrev := Series{Key: SeriesRRPreviouslyTreated, Name: labels.RRPreviouslyTreated, Axis: AxisPercentage, Color: colorRRPreviouslyTreated}

	band := &Band{
		Lo: make([]*float64, len(rows)),
		Hi: make([]*float64, len(rows)),
	}
	intervals := 0

	for i, r := range rows {
		fig.Years[i] = r.Year
		v := r.Incidence
		incidence.Values = append(incidence.Values, &v)
		rrNew.Values = append(rrNew.Values, r.RRNew)
		rrPrev.Values = append(rrPrev.Values, r.RRPreviouslyTreated)

		if r.IncidenceLo != nil && r.IncidenceHi != nil {
			lo, hi := *r.IncidenceLo, *r.IncidenceHi
			band.Lo[i], band.Hi[i] = &lo, &hi
			intervals++
		}
	}
	if intervals > 0 {
		fig.Band = band
	}

	for _, s := range []Series{incidence, rrNew, rrPrev} {
		if s.Len() > 0 {
			fig.Series = append(fig.Series, s)
		}
	}
	return fig
}

// Len is the number of points the series draws.
func (s Series) Len() int {
	n := 0
	for _, v := range s.Values {
		if v != nil {
			n++
		}
	}
	return n
}

// Segments splits the series at its gaps so no line is drawn across a
// missing year.
func (s Series) Segments(years []int) [][]Point {
	var segments [][]Point
	var current []Point
	for i, v := range s.Values {
		if v == nil {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
			continue
		}
		current = append(current, Point{Year: years[i], Value: *v})
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// Segments splits the band at years without an interval.
func (b Band) Segments(years []int) [][]Interval {
	var segments [][]Interval
	var current []Interval
	for i := range b.Lo {
		if b.Lo[i] == nil || b.Hi[i] == nil {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
			continue
		}
		current = append(current, Interval{Year: years[i], Lo: *b.Lo[i], Hi: *b.Hi[i]})
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// Has reports whether the figure draws the series of the given key.
func (f Figure) Has(key string) bool {
	for _, s := range f.Series {
		if s.Key == key {
			return true
		}
	}
	return false
}

func (f Figure) hasAxis(axis Axis) bool {
	for _, s := range f.Series {
		if s.Axis == axis {
			return true
		}
	}
	return false
}

// axisMax returns a rounded upper bound covering every value on the axis.
func (f Figure) axisMax(axis Axis) float64 {
	max := 0.0
	for _, s := range f.Series {
		if s.Axis != axis {
			continue
		}
		for _, v := range s.Values {
			if v != nil && *v > max {
				max = *v
			}
		}
	}

	if axis == AxisIncidence && f.Band != nil {
		for _, v := range f.Band.Hi {
			if v != nil && *v > max {
				max = *v
			}
		}
	}

	upper := niceCeil(max * 1.05)
	if axis == AxisPercentage && upper > 100 {
		upper = 100
	}
	return upper
}

// niceCeil rounds v up to 1, 2, 2.5 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*mag >= v {
			return m * mag
		}
	}
	return 10 * mag
}
