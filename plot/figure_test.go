package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tbtrend/schema"
)

func value(v float64) *float64 {
	return &v
}

func sampleRows() []schema.TrendRow {
	return []schema.TrendRow{
		{Year: 2015, Incidence: 142, RRNew: value(4.1), RRPreviouslyTreated: value(18)},
		{Year: 2016, Incidence: 140, RRNew: value(3.9)},
		{Year: 2017, Incidence: 137},
		{Year: 2018, Incidence: 135, RRNew: value(3.6), RRPreviouslyTreated: value(17)},
		{Year: 2019, Incidence: 133, RRNew: value(3.5), RRPreviouslyTreated: value(16.5)},
	}
}

func TestBuildFigure(t *testing.T) {
	fig := BuildFigure(sampleRows(), DefaultLabels())

	assert.Equal(t, []int{2015, 2016, 2017, 2018, 2019}, fig.Years)
	require.Len(t, fig.Series, 3)
	assert.Equal(t, SeriesIncidence, fig.Series[0].Key)
	assert.Equal(t, AxisIncidence, fig.Series[0].Axis)
	assert.Equal(t, SeriesRRNew, fig.Series[1].Key)
	assert.Equal(t, AxisPercentage, fig.Series[1].Axis)
	assert.Equal(t, SeriesRRPreviouslyTreated, fig.Series[2].Key)

	assert.Equal(t, 5, fig.Series[0].Len())
	assert.Equal(t, 4, fig.Series[1].Len())
	assert.Equal(t, 3, fig.Series[2].Len())
}

func TestBuildFigureIncidenceOnly(t *testing.T) {
	rows := []schema.TrendRow{
		{Year: 2015, Incidence: 150},
		{Year: 2016, Incidence: 140},
	}
	fig := BuildFigure(rows, DefaultLabels())

	require.Len(t, fig.Series, 1)
	assert.True(t, fig.Has(SeriesIncidence))
	assert.False(t, fig.Has(SeriesRRNew))
	assert.False(t, fig.Has(SeriesRRPreviouslyTreated))
	assert.False(t, fig.hasAxis(AxisPercentage))
}

func TestSegments(t *testing.T) {
	fig := BuildFigure(sampleRows(), DefaultLabels())

	assert.Equal(t, [][]Point{
		{{2015, 142}, {2016, 140}, {2017, 137}, {2018, 135}, {2019, 133}},
	}, fig.Series[0].Segments(fig.Years))

	assert.Equal(t, [][]Point{
		{{2015, 4.1}, {2016, 3.9}},
		{{2018, 3.6}, {2019, 3.5}},
	}, fig.Series[1].Segments(fig.Years))

	assert.Equal(t, [][]Point{
		{{2015, 18}},
		{{2018, 17}, {2019, 16.5}},
	}, fig.Series[2].Segments(fig.Years))
}

func TestNiceCeil(t *testing.T) {
	mapping := map[float64]float64{
		0:     1,
		-3:    1,
		0.7:   1,
		3.2:   5,
		18.9:  20,
		21:    25,
		100:   100,
		149.1: 200,
		260:   500,
	}
	for v, expected := range mapping {
		assert.Equal(t, expected, niceCeil(v), "niceCeil(%v)", v)
	}
}

func TestAxisMax(t *testing.T) {
	fig := BuildFigure(sampleRows(), DefaultLabels())
	assert.Equal(t, float64(200), fig.axisMax(AxisIncidence))
	assert.Equal(t, float64(20), fig.axisMax(AxisPercentage))

	high := []schema.TrendRow{{Year: 2015, Incidence: 1, RRNew: value(99)}}
	assert.Equal(t, float64(100), BuildFigure(high, DefaultLabels()).axisMax(AxisPercentage))
}

func intervalRows() []schema.TrendRow {
	return []schema.TrendRow{
		{Year: 2015, Incidence: 142, IncidenceLo: value(124), IncidenceHi: value(160), RRNew: value(3.9)},
		{Year: 2016, Incidence: 140, IncidenceLo: value(124), IncidenceHi: value(157)},
		{Year: 2017, Incidence: 137, IncidenceLo: value(123)},
		{Year: 2018, Incidence: 134, IncidenceLo: value(122), IncidenceHi: value(147), RRNew: value(3.5)},
	}
}

func TestBuildFigureBand(t *testing.T) {
	fig := BuildFigure(intervalRows(), DefaultLabels())

	require.NotNil(t, fig.Band)
	assert.Nil(t, fig.Band.Lo[2], "a year with one bound has no interval")
	assert.Nil(t, fig.Band.Hi[2])
	assert.Equal(t, [][]Interval{
		{{2015, 124, 160}, {2016, 124, 157}},
		{{2018, 122, 147}},
	}, fig.Band.Segments(fig.Years))

	assert.Nil(t, BuildFigure(sampleRows(), DefaultLabels()).Band)
}

func TestAxisMaxCoversBand(t *testing.T) {
	rows := []schema.TrendRow{
		{Year: 2015, Incidence: 180, IncidenceLo: value(150), IncidenceHi: value(230)},
		{Year: 2016, Incidence: 175},
	}
	assert.Equal(t, float64(250), BuildFigure(rows, DefaultLabels()).axisMax(AxisIncidence))
}

func TestYearAxisSingleYear(t *testing.T) {
	axis := yearAxis("Year", []int{2020})

	require.Len(t, axis.Ticks, 3)
	assert.Equal(t, float64(2019), axis.Ticks[0].Value)
	assert.Equal(t, "", axis.Ticks[0].Label)
	assert.Equal(t, "2020", axis.Ticks[1].Label)
	assert.Equal(t, "", axis.Ticks[2].Label)
	assert.NotEqual(t, axis.Ticks[0].Value, axis.Ticks[2].Value)

	axis = yearAxis("Year", []int{2016, 2015, 2017})
	require.Len(t, axis.Ticks, 3)
	assert.Equal(t, "2015", axis.Ticks[0].Label)
	assert.Equal(t, "2017", axis.Ticks[2].Label)
}
