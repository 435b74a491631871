package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tbtrend/dataset"
	"github.com/bitmark-inc/tbtrend/schema"
	"github.com/bitmark-inc/tbtrend/store"
)

func newStore(t *testing.T) store.DatasetStore {
	s, err := store.NewFileStore("../store/fixtures", []schema.Region{
		{Name: "Global", Incidence: "global_incidence.csv", Resistance: "global_rr.csv"},
		{Name: "WHO European Region", Incidence: "global_incidence.csv", Resistance: "broken_rr.csv"},
	}, "")
	require.NoError(t, err)
	return s
}

func TestRegionCheckTable(t *testing.T) {
	var out bytes.Buffer
	checks, err := newChecks(newStore(t), "global", &out, false)
	require.NoError(t, err)
	require.Len(t, checks, 1)

	require.NoError(t, checks[0].Run())

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "Global")
	assert.Equal(t, []string{"year", "incidence", "low", "high", "rr_new", "rr_prev"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2017", "137", "123", "151", "3.6", "-"}, strings.Fields(lines[4]))
}

func TestRegionCheckCSV(t *testing.T) {
	var out bytes.Buffer
	checks, err := newChecks(newStore(t), "Global", &out, true)
	require.NoError(t, err)

	require.NoError(t, checks[0].Run())
	assert.Equal(t, "year,incidence,incidence_low,incidence_high,rr_new,rr_previously_treated\n"+
		"2015,142,124,160,3.9,18\n"+
		"2016,140,124,157,3.7,17\n"+
		"2017,137,123,151,3.6,\n", out.String())
}

func TestRegionCheckFailure(t *testing.T) {
	var out bytes.Buffer
	checks, err := newChecks(newStore(t), "", &out, false)
	require.NoError(t, err)
	require.Len(t, checks, 2)

	assert.NoError(t, checks[0].Run())

	err = checks[1].Run()
	var malformed *dataset.MalformedInputError
	assert.True(t, errors.As(err, &malformed))
	assert.Contains(t, err.Error(), "region WHO European Region")
}

func TestNewChecksUnknownRegion(t *testing.T) {
	_, err := newChecks(newStore(t), "mars", nil, false)
	assert.True(t, errors.Is(err, store.ErrUnknownRegion))
}
