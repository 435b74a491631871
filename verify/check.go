package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/tbtrend/align"
	"github.com/bitmark-inc/tbtrend/dataset"
	"github.com/bitmark-inc/tbtrend/schema"
	"github.com/bitmark-inc/tbtrend/store"
)

type Check interface {
	Run() error
}

type regionCheck struct {
	datasets store.DatasetStore
	region   schema.Region
	out      io.Writer
	asCSV    bool
}

// Run loads and aligns the region and prints its combined table
func (c regionCheck) Run() error {
	tables, err := c.datasets.Load(c.region.Name)
	if err != nil {
		return fmt.Errorf("region %s: %w", c.region.Name, err)
	}

	rows, err := align.Align(tables.Incidence, tables.Resistance)
	if err != nil {
		return fmt.Errorf("region %s: %w", c.region.Name, err)
	}

	log.WithFields(log.Fields{
		"prefix":         logPrefix,
		"region":         c.region.Name,
		"years":          len(rows),
		"gaps_new":       align.Gaps(rows, schema.CaseCategoryNew),
		"gaps_prev_trtd": align.Gaps(rows, schema.CaseCategoryPreviouslyTreated),
	}).Info("region verified")

	if c.asCSV {
		return dataset.WriteTrend(c.out, rows)
	}
	return printTable(c.out, c.region.Name, rows)
}

// newChecks returns a check for every region, or for the one named only
func newChecks(datasets store.DatasetStore, only string, out io.Writer, asCSV bool) ([]Check, error) {
	regions := datasets.Regions()
	if only != "" {
		r, ok := datasets.Region(only)
		if !ok {
			return nil, fmt.Errorf("%w: %s", store.ErrUnknownRegion, only)
		}
		regions = []schema.Region{r}
	}

	checks := make([]Check, len(regions))
	for i, r := range regions {
		checks[i] = regionCheck{datasets: datasets, region: r, out: out, asCSV: asCSV}
	}
	return checks, nil
}

func printTable(out io.Writer, region string, rows []schema.TrendRow) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t\t\t\t\t\t\n", region)
	fmt.Fprintln(w, "year\tincidence\tlow\thigh\trr_new\trr_prev\t")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Year, format(&r.Incidence), format(r.IncidenceLo), format(r.IncidenceHi),
			format(r.RRNew), format(r.RRPreviouslyTreated))
	}
	fmt.Fprintln(w)
	return w.Flush()
}

func format(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
