package dataset

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/jszwec/csvutil"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/tbtrend/consts"
	"github.com/bitmark-inc/tbtrend/schema"
)

const (
	colCaseCategory        = "case_category"
	colPercentage          = "rr_tb_percentage"
	colRRNew               = "rr_new"
	colRRPreviouslyTreated = "rr_previously_treated"
)

var (
	longResistanceLayout = layout{
		name:     "canonical",
		marker:   colYear,
		required: []string{colYear, colCaseCategory, colPercentage},
	}

	// the WHO export carries one column per case category
	wideResistanceLayout = layout{
		name:   "WHO report",
		marker: "Category",
		required: []string{
			"Category",
			"New pulmonary bacteriologically confirmed cases",
			"Previously treated pulmonary bacteriologically confirmed cases",
		},
		columns: map[string]string{
			"Category": colYear,
			"New pulmonary bacteriologically confirmed cases":                colRRNew,
			"Previously treated pulmonary bacteriologically confirmed cases": colRRPreviouslyTreated,
		},
	}
)

type resistanceRow struct {
	Year       *int     `csv:"year"`
	Category   *string  `csv:"case_category"`
	Percentage *float64 `csv:"rr_tb_percentage"`
}

type wideResistanceRow struct {
	Year              *int     `csv:"year"`
	New               *float64 `csv:"rr_new"`
	PreviouslyTreated *float64 `csv:"rr_previously_treated"`
}

// LoadResistance reads a RR-TB prevalence CSV file.
func LoadResistance(path string) ([]schema.ResistanceRecord, error) {
	var records []schema.ResistanceRecord
	err := readFile(path, func(r io.Reader) error {
		var err error
		records, err = ReadResistance(r, path)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "path": path, "records": len(records)}).Debug("loaded rr-tb prevalence")
	return records, nil
}

// ReadResistance decodes RR-TB prevalence records from r. The wide WHO layout
// is unpivoted into one record per category; empty cells yield no record.
func ReadResistance(r io.Reader, source string) ([]schema.ResistanceRecord, error) {
	cr := newReader(r)
	header, err := readHeader(source, cr)
	if err != nil {
		return nil, err
	}

	l, err := detect(source, header, longResistanceLayout, wideResistanceLayout)
	if err != nil {
		return nil, err
	}

	dec, err := csvutil.NewDecoder(cr, l.canonical(header)...)
	if err != nil {
		e := malformed(source, 1, "", "%s", err)
		e.Err = err
		return nil, e
	}

	c := collector{source: source, seen: map[resistanceKey]int{}, records: []schema.ResistanceRecord{}}
	if l.name == wideResistanceLayout.name {
		err = c.decodeWide(dec, cr)
	} else {
		err = c.decodeLong(dec, cr)
	}
	if err != nil {
		return nil, err
	}

	return c.records, nil
}

type resistanceKey struct {
	year     int
	category schema.CaseCategory
}

type collector struct {
	source  string
	seen    map[resistanceKey]int
	records []schema.ResistanceRecord
}

func (c *collector) decodeLong(dec *csvutil.Decoder, cr *csv.Reader) error {
	for {
		var row resistanceRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			return nil
		}
		line := recordLine(cr, err)
		if err != nil {
			return c.decodeError(line, err)
		}

		year, err := c.year(row.Year, line)
		if err != nil {
			return err
		}

		if row.Category == nil {
			return malformed(c.source, line, colCaseCategory, "missing value")
		}
		category, err := schema.ParseCaseCategory(*row.Category)
		if err != nil {
			e := malformed(c.source, line, colCaseCategory, "%s", err)
			e.Err = err
			return e
		}

		if row.Percentage == nil {
			return malformed(c.source, line, colPercentage, "missing value")
		}
		if err := c.add(year, category, *row.Percentage, line, colPercentage); err != nil {
			return err
		}
	}
}

func (c *collector) decodeWide(dec *csvutil.Decoder, cr *csv.Reader) error {
	for {
		var row wideResistanceRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			return nil
		}
		line := recordLine(cr, err)
		if err != nil {
			return c.decodeError(line, err)
		}

		year, err := c.year(row.Year, line)
		if err != nil {
			return err
		}

		if row.New != nil {
			if err := c.add(year, schema.CaseCategoryNew, *row.New, line, colRRNew); err != nil {
				return err
			}
		}
		if row.PreviouslyTreated != nil {
			if err := c.add(year, schema.CaseCategoryPreviouslyTreated, *row.PreviouslyTreated, line, colRRPreviouslyTreated); err != nil {
				return err
			}
		}
	}
}

func (c *collector) decodeError(line int, err error) error {
	e := malformed(c.source, line, "", "%s", err)
	e.Err = err
	return e
}

func (c *collector) year(year *int, line int) (int, error) {
	if year == nil {
		return 0, malformed(c.source, line, colYear, "missing value")
	}
	if !consts.InYearRange(*year) {
		return 0, malformed(c.source, line, colYear, "year %d outside %d-%d", *year, consts.MinYear, consts.MaxYear)
	}
	return *year, nil
}

func (c *collector) add(year int, category schema.CaseCategory, percentage float64, line int, column string) error {
	if !finite(percentage) || percentage < 0 || percentage > 100 {
		return malformed(c.source, line, column, "invalid percentage %v, expect a value in [0,100]", percentage)
	}

	key := resistanceKey{year: year, category: category}
	if prev, ok := c.seen[key]; ok {
		return malformed(c.source, line, colYear, "year %d of %s already given on line %d", year, category, prev)
	}
	c.seen[key] = line

	c.records = append(c.records, schema.ResistanceRecord{
		Year:       year,
		Category:   category,
		Percentage: percentage,
	})
	return nil
}
