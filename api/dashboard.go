package api

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/tbtrend/consts"
	"github.com/bitmark-inc/tbtrend/schema"
	"github.com/bitmark-inc/tbtrend/summary"
	"github.com/bitmark-inc/tbtrend/utils"
)

const gapCell = "–"

var templateFuncs = template.FuncMap{
	"cell":   cell,
	"number": number,
}

// cell formats a nullable value of the data table
func cell(v *float64) string {
	if v == nil {
		return gapCell
	}
	return number(*v)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type regionOption struct {
	Name     string
	Key      string
	Selected bool
}

type dashboardPage struct {
	Lang       string
	Title      string
	Heading    string
	Subheading string

	SelectRegion string
	Show         string
	Regions      []regionOption

	Error string

	ChartURL    string
	PNGURL      string
	SVGURL      string
	CSVURL      string
	DownloadPNG string
	DownloadSVG string
	DownloadCSV string

	Summary []string

	ViewDataSource string
	Columns        []string
	Rows           []schema.TrendRow
}

func (s *Server) dashboard(c *gin.Context) {
	var params trendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	l := localizer(c, params.Lang)

	from, to := consts.MinYear, consts.MaxYear
	page := dashboardPage{
		Lang:           languageTag(l),
		Title:          utils.Localize(l, "PageTitle", nil),
		Subheading:     utils.Localize(l, "Subheading", nil),
		SelectRegion:   utils.Localize(l, "SelectRegion", nil),
		Show:           utils.Localize(l, "Show", nil),
		DownloadPNG:    utils.Localize(l, "DownloadPNG", nil),
		DownloadSVG:    utils.Localize(l, "DownloadSVG", nil),
		DownloadCSV:    utils.Localize(l, "DownloadCSV", nil),
		ViewDataSource: utils.Localize(l, "ViewDataSource", nil),
		Columns: []string{
			utils.Localize(l, "AxisYear", nil),
			utils.Localize(l, "SeriesIncidence", nil),
			utils.Localize(l, "IncidenceLow", nil),
			utils.Localize(l, "IncidenceHigh", nil),
			utils.Localize(l, "SeriesRRNew", nil),
			utils.Localize(l, "SeriesRRPreviouslyTreated", nil),
		},
	}

	status := http.StatusOK
	t, err := s.loadTrend(params.Region)
	if err != nil {
		report(err)
		status, _ = failure(err)
		page.Error = failureMessage(l, s.regionName(params.Region), err)
		page.Regions = s.regionOptions(params.Region)
	} else {
		page.Regions = s.regionOptions(t.Region.Key)
		page.Rows = t.Rows
		page.Summary = summaryLines(l, chartLabels(l, t.Region.Name), summary.Of(t.Rows))
		if n := len(t.Rows); n > 0 {
			from, to = t.Rows[0].Year, t.Rows[n-1].Year
		}

		query := url.Values{"region": {t.Region.Key}}
		if params.Lang != "" {
			query.Set("lang", params.Lang)
		}
		q := "?" + query.Encode()
		page.ChartURL = "/chart" + q
		page.PNGURL = "/chart.png" + q
		page.SVGURL = "/chart.svg" + q
		page.CSVURL = "/api/trends.csv" + q
	}
	page.Heading = utils.Localize(l, "Heading", map[string]interface{}{"From": from, "To": to})

	c.HTML(status, "dashboard.tmpl", page)
}

// regionOptions marks the region addressed by selected, by name or key
func (s *Server) regionOptions(selected string) []regionOption {
	regions := s.store.Regions()
	options := make([]regionOption, len(regions))
	for i, r := range regions {
		options[i] = regionOption{
			Name:     r.Name,
			Key:      r.Key,
			Selected: selected == r.Key || selected == r.Name,
		}
	}
	return options
}
