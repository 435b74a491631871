package summary

import (
	"math"

	"github.com/bitmark-inc/tbtrend/schema"
)

type Direction string

const (
	Rising  Direction = "RISING"
	Falling Direction = "FALLING"
	Stable  Direction = "STABLE"
)

// changes within this many percent count as stable
const stableBand = 1.0

// Change compares the first and the latest year a series has a value for.
type Change struct {
	From      int       `json:"from"`
	To        int       `json:"to"`
	First     float64   `json:"first"`
	Last      float64   `json:"last"`
	Rate      float64   `json:"rate"`
	Direction Direction `json:"direction"`
}

// Summary holds the change of every series. A series with fewer than two
// values has no change.
type Summary struct {
	Incidence           *Change `json:"incidence"`
	RRNew               *Change `json:"rr_new"`
	RRPreviouslyTreated *Change `json:"rr_previously_treated"`
}

func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		} else {
			return float64(100)
		}
	}

	return (new - old) / old * 100
}

func direction(rate float64) Direction {
	switch {
	case rate > stableBand:
		return Rising
	case rate < -stableBand:
		return Falling
	default:
		return Stable
	}
}

// Of summarises rows sorted by year, as returned by align.Align.
func Of(rows []schema.TrendRow) Summary {
	return Summary{
		Incidence: change(rows, func(r schema.TrendRow) *float64 {
			v := r.Incidence
			return &v
		}),
		RRNew: change(rows, func(r schema.TrendRow) *float64 {
			return r.RR(schema.CaseCategoryNew)
		}),
		RRPreviouslyTreated: change(rows, func(r schema.TrendRow) *float64 {
			return r.RR(schema.CaseCategoryPreviouslyTreated)
		}),
	}
}

func change(rows []schema.TrendRow, cell func(schema.TrendRow) *float64) *Change {
	first, last := -1, -1
	for i, r := range rows {
		if cell(r) == nil {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}

	if first < 0 || first == last {
		return nil
	}

	c := &Change{
		From:  rows[first].Year,
		To:    rows[last].Year,
		First: *cell(rows[first]),
		Last:  *cell(rows[last]),
	}
	c.Rate = math.Round(ChangeRate(c.Last, c.First)*10) / 10
	c.Direction = direction(c.Rate)
	return c
}
