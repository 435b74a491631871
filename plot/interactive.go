package plot

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// gap marks a missing value, echarts draws neither point nor line for it
const gap = "-"

const (
	bandFill    = "rgba(44,160,44,0.2)"
	bandCutout  = "#ffffff"
	transparent = "rgba(0,0,0,0)"
)

func lineData(values []*float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		if v == nil {
			data[i] = opts.LineData{Value: gap}
		} else {
			data[i] = opts.LineData{Value: *v}
		}
	}
	return data
}

// RenderInteractive writes a standalone HTML page holding the figure as a
// dual axis line chart. Hovering a year shows the exact value of each series.
func RenderInteractive(w io.Writer, fig Figure) error {
	if len(fig.Series) == 0 || len(fig.Years) == 0 {
		return ErrNoSeries
	}

	legend := make([]string, len(fig.Series))
	for i, s := range fig.Series {
		legend[i] = s.Name
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fig.Labels.Title,
			Width:     "100%",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: fig.Labels.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "0", Data: legend}),
		charts.WithXAxisOpts(opts.XAxis{Name: fig.Labels.Year, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: fig.Labels.IncidenceAxis,
			Type: "value",
			Min:  0,
			Max:  fig.axisMax(AxisIncidence),
		}),
	)

	percentageAxis := 0
	if fig.hasAxis(AxisPercentage) {
		line.ExtendYAxis(opts.YAxis{
			Name: fig.Labels.PercentageAxis,
			Type: "value",
			Min:  0,
			Max:  fig.axisMax(AxisPercentage),
		})
		percentageAxis = 1
	}

	years := make([]string, len(fig.Years))
	for i, y := range fig.Years {
		years[i] = strconv.Itoa(y)
	}
	line.SetXAxis(years)

	// the band is the high area with the low area painted over it, both
	// drawn below the series lines
	if fig.Band != nil {
		for _, bound := range []struct {
			name   string
			values []*float64
			fill   string
		}{
			{fig.Labels.IncidenceHigh, fig.Band.Hi, bandFill},
			{fig.Labels.IncidenceLow, fig.Band.Lo, bandCutout},
		} {
			line.AddSeries(bound.name, lineData(bound.values),
				charts.WithLineChartOpts(opts.LineChart{
					ShowSymbol:   opts.Bool(false),
					ConnectNulls: opts.Bool(false),
				}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: transparent}),
				charts.WithAreaStyleOpts(opts.AreaStyle{Color: bound.fill, Opacity: 1}),
			)
		}
	}

	for _, s := range fig.Series {
		data := lineData(s.Values)

		yAxisIndex := 0
		if s.Axis == AxisPercentage {
			yAxisIndex = percentageAxis
		}

		line.AddSeries(s.Name, data,
			charts.WithLineChartOpts(opts.LineChart{
				YAxisIndex:   yAxisIndex,
				ShowSymbol:   opts.Bool(true),
				ConnectNulls: opts.Bool(false),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
		)
	}

	return line.Render(w)
}
