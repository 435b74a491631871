package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

const (
	staticWidth  = 1024
	staticHeight = 500
	axisTicks    = 5
	bandAlpha    = 51
)

var ErrNoSeries = errors.New("nothing to plot")

// ContentType is the media type of the rendered format.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func lineStyle(hex string) chart.Style {
	col := drawing.ColorFromHex(hex[1:])
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 3,
		DotWidth:    4,
		DotColor:    col,
	}
}

// RenderStatic draws the figure as a PNG or SVG image. Every contiguous run of
// values becomes its own line so gaps stay empty.
func RenderStatic(w io.Writer, format Format, fig Figure) error {
	if len(fig.Series) == 0 || len(fig.Years) == 0 {
		return ErrNoSeries
	}

	var provider chart.RendererProvider
	switch format {
	case PNG:
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	ch := staticChart(fig)
	return ch.Render(provider, w)
}

// staticChart lays out the figure for go-chart. The secondary axis gets a
// range only: its ticks would be read from the primary axis.
func staticChart(fig Figure) chart.Chart {
	incidenceMax := fig.axisMax(AxisIncidence)
	percentageMax := fig.axisMax(AxisPercentage)

	ch := chart.Chart{
		Title:      fig.Labels.Title,
		Width:      staticWidth,
		Height:     staticHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      yearAxis(fig.Labels.Year, fig.Years),
		YAxis: chart.YAxis{
			Name:  fig.Labels.IncidenceAxis,
			Range: &chart.ContinuousRange{Min: 0, Max: incidenceMax},
			Ticks: linearTicks(incidenceMax, axisTicks),
		},
		YAxisSecondary: chart.YAxis{
			Name:  fig.Labels.PercentageAxis,
			Range: &chart.ContinuousRange{Min: 0, Max: percentageMax},
		},
	}

	if fig.Band != nil {
		ch.Series = append(ch.Series, bandSeries{
			segments: fig.Band.Segments(fig.Years),
			color:    drawing.ColorFromHex(colorIncidence[1:]).WithAlpha(bandAlpha),
		})
	}

	// the legend lists each series once, not once per segment
	legend := chart.Chart{}
	for _, s := range fig.Series {
		yAxis := chart.YAxisPrimary
		if s.Axis == AxisPercentage {
			yAxis = chart.YAxisSecondary
		}

		for i, segment := range s.Segments(fig.Years) {
			cs := chart.ContinuousSeries{
				Name:    s.Name,
				Style:   lineStyle(s.Color),
				YAxis:   yAxis,
				XValues: make([]float64, len(segment)),
				YValues: make([]float64, len(segment)),
			}
			for j, p := range segment {
				cs.XValues[j] = float64(p.Year)
				cs.YValues[j] = p.Value
			}
			ch.Series = append(ch.Series, cs)
			if i == 0 {
				legend.Series = append(legend.Series, cs)
			}
		}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&legend)}

	return ch
}

// yearAxis labels every year of the figure. A single year is widened by one
// unlabeled year on each side, the x range is taken from the ticks and must
// not be empty.
func yearAxis(name string, years []int) chart.XAxis {
	min, max := years[0], years[0]
	for _, y := range years {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}

	lo, hi := min, max
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	ticks := make([]chart.Tick, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		label := ""
		if y >= min && y <= max {
			label = strconv.Itoa(y)
		}
		ticks = append(ticks, chart.Tick{Value: float64(y), Label: label})
	}

	return chart.XAxis{
		Name:  name,
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: float64(lo), Max: float64(hi)},
	}
}

// bandSeries fills the area between the low and high bound of each interval
// segment on the primary axis.
type bandSeries struct {
	segments [][]Interval
	color    drawing.Color
}

func (b bandSeries) GetName() string { return "" }
func (b bandSeries) GetStyle() chart.Style { return chart.Style{} }
func (b bandSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (b bandSeries) Validate() error { return nil }

func (b bandSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	x := func(year int) int { return canvasBox.Left + xrange.Translate(float64(year)) }
	y := func(v float64) int { return canvasBox.Bottom - yrange.Translate(v) }

	for _, segment := range b.segments {
		if len(segment) < 2 {
			continue
		}

		r.SetFillColor(b.color)
		r.SetStrokeColor(drawing.ColorTransparent)
		r.SetStrokeWidth(0)

		r.MoveTo(x(segment[0].Year), y(segment[0].Hi))
		for _, p := range segment[1:] {
			r.LineTo(x(p.Year), y(p.Hi))
		}
		for i := len(segment) - 1; i >= 0; i-- {
			r.LineTo(x(segment[i].Year), y(segment[i].Lo))
		}
		r.Close()
		r.Fill()
	}
}

func linearTicks(max float64, n int) []chart.Tick {
	step := max / float64(n)
	ticks := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := math.Round(step*float64(i)*100) / 100
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}
