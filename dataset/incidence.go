package dataset

import (
	"errors"
	"io"

	"github.com/jszwec/csvutil"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/tbtrend/consts"
	"github.com/bitmark-inc/tbtrend/schema"
)

const (
	colYear          = "year"
	colIncidence     = "incidence_per_100k"
	colIncidenceLow  = "incidence_low"
	colIncidenceHigh = "incidence_high"
)

var incidenceLayouts = []layout{
	{
		name:     "canonical",
		marker:   colYear,
		required: []string{colYear, colIncidence},
	},
	{
		name:     "WHO report",
		marker:   "Category",
		required: []string{"Category", "Estimated TB incidence per 100 000 population"},
		columns: map[string]string{
			"Category": colYear,
			"Estimated TB incidence per 100 000 population": colIncidence,
			"Uncertainty interval (low)":                    colIncidenceLow,
			"Uncertainty interval (high)":                   colIncidenceHigh,
		},
	},
}

type incidenceRow struct {
	Year      *int     `csv:"year"`
	Incidence *float64 `csv:"incidence_per_100k"`
	Low       *float64 `csv:"incidence_low"`
	High      *float64 `csv:"incidence_high"`
}

// LoadIncidence reads an incidence CSV file.
func LoadIncidence(path string) ([]schema.IncidenceRecord, error) {
	var records []schema.IncidenceRecord
	err := readFile(path, func(r io.Reader) error {
		var err error
		records, err = ReadIncidence(r, path)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "path": path, "records": len(records)}).Debug("loaded incidence")
	return records, nil
}

// ReadIncidence decodes incidence records from r. source names the input in errors.
func ReadIncidence(r io.Reader, source string) ([]schema.IncidenceRecord, error) {
	cr := newReader(r)
	header, err := readHeader(source, cr)
	if err != nil {
		return nil, err
	}

	l, err := detect(source, header, incidenceLayouts...)
	if err != nil {
		return nil, err
	}

	dec, err := csvutil.NewDecoder(cr, l.canonical(header)...)
	if err != nil {
		e := malformed(source, 1, "", "%s", err)
		e.Err = err
		return nil, e
	}

	records := []schema.IncidenceRecord{}
	seen := map[int]int{}
	for {
		var row incidenceRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		line := recordLine(cr, err)
		if err != nil {
			e := malformed(source, line, "", "%s", err)
			e.Err = err
			return nil, e
		}

		record, err := row.record(source, line)
		if err != nil {
			return nil, err
		}

		if prev, ok := seen[record.Year]; ok {
			return nil, malformed(source, line, colYear, "year %d already given on line %d", record.Year, prev)
		}
		seen[record.Year] = line
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, malformed(source, 0, "", "no incidence records")
	}

	return records, nil
}

func (row incidenceRow) record(source string, line int) (schema.IncidenceRecord, error) {
	if row.Year == nil {
		return schema.IncidenceRecord{}, malformed(source, line, colYear, "missing value")
	}
	if !consts.InYearRange(*row.Year) {
		return schema.IncidenceRecord{}, malformed(source, line, colYear, "year %d outside %d-%d", *row.Year, consts.MinYear, consts.MaxYear)
	}
	if row.Incidence == nil {
		return schema.IncidenceRecord{}, malformed(source, line, colIncidence, "missing value")
	}

	values := []struct {
		column string
		v      *float64
	}{
		{colIncidence, row.Incidence},
		{colIncidenceLow, row.Low},
		{colIncidenceHigh, row.High},
	}
	for _, value := range values {
		if value.v == nil {
			continue
		}
		if !finite(*value.v) || *value.v < 0 {
			return schema.IncidenceRecord{}, malformed(source, line, value.column, "invalid value %v, expect a non-negative number", *value.v)
		}
	}

	if row.Low != nil && row.High != nil && *row.Low > *row.High {
		return schema.IncidenceRecord{}, malformed(source, line, colIncidenceLow, "uncertainty interval low %v is above high %v", *row.Low, *row.High)
	}

	return schema.IncidenceRecord{
		Year:        *row.Year,
		Incidence:   *row.Incidence,
		IncidenceLo: row.Low,
		IncidenceHi: row.High,
	}, nil
}
