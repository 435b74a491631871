package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tbtrend/schema"
)

func TestLoadIncidence(t *testing.T) {
	records, err := LoadIncidence("fixtures/incidence.csv")
	require.NoError(t, err)
	assert.Len(t, records, 10)

	for i, r := range records {
		assert.Equal(t, 2015+i, r.Year)
		assert.True(t, r.Incidence >= 0)
		assert.Nil(t, r.IncidenceLo)
		assert.Nil(t, r.IncidenceHi)
	}
	assert.Equal(t, 131.5, records[9].Incidence)
}

func TestLoadIncidenceWHOLayout(t *testing.T) {
	records, err := LoadIncidence("fixtures/who_incidence.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, 2015, records[0].Year)
	assert.Equal(t, float64(142), records[0].Incidence)
	require.NotNil(t, records[0].IncidenceLo)
	require.NotNil(t, records[0].IncidenceHi)
	assert.Equal(t, float64(124), *records[0].IncidenceLo)
	assert.Equal(t, float64(160), *records[0].IncidenceHi)
}

func TestLoadIncidenceIdempotent(t *testing.T) {
	first, err := LoadIncidence("fixtures/who_incidence.csv")
	require.NoError(t, err)
	second, err := LoadIncidence("fixtures/who_incidence.csv")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadIncidenceMissingFile(t *testing.T) {
	records, err := LoadIncidence("fixtures/not_there.csv")
	assert.Nil(t, records)

	var missing *MissingFileError
	require.True(t, errors.As(err, &missing), "wrong error type %T", err)
	assert.Equal(t, "fixtures/not_there.csv", missing.Path)
}

func TestIncidenceRoundTrip(t *testing.T) {
	records, err := LoadIncidence("fixtures/who_incidence.csv")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteIncidence(&buf, records))
	assert.True(t, strings.HasPrefix(buf.String(), "year,incidence_per_100k,incidence_low,incidence_high\n"))

	again, err := ReadIncidence(&buf, "round-trip")
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestReadIncidenceMalformed(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		line   int
		column string
	}{
		{"empty", "", 0, ""},
		{"header only", "year,incidence_per_100k\n", 0, ""},
		{"missing incidence column", "year,cases\n2015,1\n", 1, "incidence_per_100k"},
		{"no year column", "period,incidence_per_100k\n2015,1\n", 1, "year"},
		{"non numeric", "year,incidence_per_100k\n2015,abc\n", 2, ""},
		{"empty value", "year,incidence_per_100k\n2015,\n", 2, "incidence_per_100k"},
		{"negative", "year,incidence_per_100k\n2015,-1\n", 2, "incidence_per_100k"},
		{"year too early", "year,incidence_per_100k\n2014,10\n", 2, "year"},
		{"year too late", "year,incidence_per_100k\n2025,10\n", 2, "year"},
		{"duplicated year", "year,incidence_per_100k\n2015,10\n2015,11\n", 3, "year"},
		{"interval inverted", "year,incidence_per_100k,incidence_low,incidence_high\n2015,10,12,8\n", 2, "incidence_low"},
		{"field count", "year,incidence_per_100k\n2015,10,3\n", 2, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := ReadIncidence(strings.NewReader(tc.input), "test.csv")
			assert.Nil(t, records, "partial table returned")

			var malformed *MalformedInputError
			require.True(t, errors.As(err, &malformed), "wrong error type %T: %v", err, err)
			assert.Equal(t, "test.csv", malformed.Path)
			assert.Equal(t, tc.column, malformed.Column)
			if tc.line > 0 {
				assert.Equal(t, tc.line, malformed.Line)
			}
		})
	}
}

func TestReadIncidenceOptionalInterval(t *testing.T) {
	input := "year,incidence_per_100k,incidence_low,incidence_high\n2015,150,,\n2016,140,130,150\n"
	records, err := ReadIncidence(strings.NewReader(input), "test.csv")
	require.NoError(t, err)

	low, high := float64(130), float64(150)
	assert.Equal(t, []schema.IncidenceRecord{
		{Year: 2015, Incidence: 150},
		{Year: 2016, Incidence: 140, IncidenceLo: &low, IncidenceHi: &high},
	}, records)
}
