package consts

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/tbtrend/schema"
)

const (
	MinYear = 2015
	MaxYear = 2024

	GlobalRegion = "Global"
)

// WHORegions lists the selectable regions in display order together with the
// file names of the WHO Global TB Report 2025 exports.
var WHORegions = []schema.Region{
	{Name: GlobalRegion, Incidence: "GTB_report_2025_incidence.csv", Resistance: "GTB_report_2025_RR_prevalence.csv"},
	{Name: "WHO African Region", Incidence: "African_region_report_2025_incidence.csv", Resistance: "African_region_report_2025_RR_prevalence.csv"},
	{Name: "WHO/PAHO Region of the Americas", Incidence: "Region_of_the_Americas_report_2025_incidence.csv", Resistance: "Region_of_the_Americas_report_2025_RR_prevalence.csv"},
	{Name: "WHO Eastern Mediterranean Region", Incidence: "Eastern_Mediterranean_region_report_2025_incidence.csv", Resistance: "Eastern_Mediterranean_region_report_2025_RR_prevalence.csv"},
	{Name: "WHO European Region", Incidence: "European_region_report_2025_incidence.csv", Resistance: "European_region_report_2025_RR_prevalence.csv"},
	{Name: "WHO South-East Asia Region", Incidence: "South_East_Asia_Region_report_2025_incidence.csv", Resistance: "South_East_Asia_Region_report_2025_RR_prevalence.csv"},
	{Name: "WHO Western Pacific Region", Incidence: "Western_Pacific_Region_report_2025_incidence.csv", Resistance: "Western_Pacific_Region_report_2025_RR_prevalence.csv"},
}

// RegionKey - convert a region display name into a url friendly key
func RegionKey(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty region name")
	}

	name = strings.TrimPrefix(name, "WHO/PAHO ")
	name = strings.TrimPrefix(name, "WHO ")

	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteRune('_')
			underscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_"), nil
}

// InYearRange reports whether year is inside the supported reporting window.
func InYearRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}
