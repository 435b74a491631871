package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/tbtrend/schema"
)

type ResistanceTestSuite struct {
	suite.Suite
}

func (s *ResistanceTestSuite) TestLoadLongLayout() {
	records, err := LoadResistance("fixtures/rr_prevalence.csv")
	s.NoError(err)
	s.Equal([]schema.ResistanceRecord{
		{Year: 2015, Category: schema.CaseCategoryNew, Percentage: 4.1},
		{Year: 2018, Category: schema.CaseCategoryNew, Percentage: 3.6},
		{Year: 2022, Category: schema.CaseCategoryNew, Percentage: 3.2},
	}, records)
}

func (s *ResistanceTestSuite) TestLoadWideLayout() {
	records, err := LoadResistance("fixtures/who_rr_prevalence.csv")
	s.NoError(err)
	// the empty previously treated cell of 2017 is a gap, not a record
	s.Equal([]schema.ResistanceRecord{
		{Year: 2015, Category: schema.CaseCategoryNew, Percentage: 3.9},
		{Year: 2015, Category: schema.CaseCategoryPreviouslyTreated, Percentage: 18},
		{Year: 2016, Category: schema.CaseCategoryNew, Percentage: 3.7},
		{Year: 2016, Category: schema.CaseCategoryPreviouslyTreated, Percentage: 17},
		{Year: 2017, Category: schema.CaseCategoryNew, Percentage: 3.6},
	}, records)

	for _, r := range records {
		s.True(r.Percentage >= 0 && r.Percentage <= 100)
		s.True(r.Year >= 2015 && r.Year <= 2024)
	}
}

func (s *ResistanceTestSuite) TestLoadMissingCategoryColumn() {
	records, err := LoadResistance("fixtures/rr_missing_category.csv")
	s.Nil(records)

	var malformed *MalformedInputError
	s.True(errors.As(err, &malformed), "wrong error type %T", err)
	s.Equal("case_category", malformed.Column)
	s.Equal("fixtures/rr_missing_category.csv", malformed.Path)
}

func (s *ResistanceTestSuite) TestLoadMissingFile() {
	_, err := LoadResistance("fixtures/nothing.csv")
	var missing *MissingFileError
	s.True(errors.As(err, &missing), "wrong error type %T", err)
}

func (s *ResistanceTestSuite) TestHeaderOnly() {
	records, err := ReadResistance(strings.NewReader("year,case_category,rr_tb_percentage\n"), "test.csv")
	s.NoError(err)
	s.NotNil(records)
	s.Len(records, 0)
}

func (s *ResistanceTestSuite) TestRoundTrip() {
	records, err := LoadResistance("fixtures/who_rr_prevalence.csv")
	s.NoError(err)

	var buf bytes.Buffer
	s.NoError(WriteResistance(&buf, records))
	s.True(strings.HasPrefix(buf.String(), "year,case_category,rr_tb_percentage\n"))

	again, err := ReadResistance(&buf, "round-trip")
	s.NoError(err)
	s.Equal(records, again)
}

func (s *ResistanceTestSuite) TestIdempotent() {
	first, err := LoadResistance("fixtures/rr_prevalence.csv")
	s.NoError(err)
	second, err := LoadResistance("fixtures/rr_prevalence.csv")
	s.NoError(err)
	s.Equal(first, second)
}

func (s *ResistanceTestSuite) TestMalformed() {
	testCases := map[string]struct {
		input  string
		column string
	}{
		"unknown category":   {"year,case_category,rr_tb_percentage\n2015,RELAPSE,3\n", "case_category"},
		"empty category":     {"year,case_category,rr_tb_percentage\n2015,,3\n", "case_category"},
		"empty percentage":   {"year,case_category,rr_tb_percentage\n2015,NEW,\n", "rr_tb_percentage"},
		"above hundred":      {"year,case_category,rr_tb_percentage\n2015,NEW,100.5\n", "rr_tb_percentage"},
		"negative":           {"year,case_category,rr_tb_percentage\n2015,NEW,-0.1\n", "rr_tb_percentage"},
		"non numeric":        {"year,case_category,rr_tb_percentage\n2015,NEW,n/a\n", ""},
		"duplicated":         {"year,case_category,rr_tb_percentage\n2015,NEW,3\n2015,new,4\n", "year"},
		"year out of range":  {"year,case_category,rr_tb_percentage\n2030,NEW,3\n", "year"},
		"wide missing":       {"Category,New pulmonary bacteriologically confirmed cases\n2015,3\n", "Previously treated pulmonary bacteriologically confirmed cases"},
		"wide out of range":  {"Category,Previously treated pulmonary bacteriologically confirmed cases,New pulmonary bacteriologically confirmed cases\n2015,101,3\n", "rr_previously_treated"},
		"no marker column":   {"when,case_category,rr_tb_percentage\n2015,NEW,3\n", "year"},
		"missing year value": {"year,case_category,rr_tb_percentage\n,NEW,3\n", "year"},
	}

	for name, tc := range testCases {
		records, err := ReadResistance(strings.NewReader(tc.input), "test.csv")
		s.Nil(records, name)

		var malformed *MalformedInputError
		if s.True(errors.As(err, &malformed), "%s: wrong error type %T", name, err) {
			s.Equal(tc.column, malformed.Column, name)
		}
	}
}

func (s *ResistanceTestSuite) TestCategoriesKeepKeysApart() {
	input := "year,case_category,rr_tb_percentage\n2015,NEW,3\n2015,PREVIOUSLY_TREATED,15\n"
	records, err := ReadResistance(strings.NewReader(input), "test.csv")
	s.NoError(err)
	s.Len(records, 2)
}

func TestResistanceTestSuite(t *testing.T) {
	suite.Run(t, new(ResistanceTestSuite))
}
