package dataset

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/bitmark-inc/tbtrend/schema"
)

// WriteIncidence encodes records in the canonical incidence layout.
func WriteIncidence(w io.Writer, records []schema.IncidenceRecord) error {
	return write(w, schema.IncidenceRecord{}, len(records), func(enc *csvutil.Encoder, i int) error {
		return enc.Encode(records[i])
	})
}

// WriteResistance encodes records in the canonical long layout.
func WriteResistance(w io.Writer, records []schema.ResistanceRecord) error {
	return write(w, schema.ResistanceRecord{}, len(records), func(enc *csvutil.Encoder, i int) error {
		return enc.Encode(records[i])
	})
}

// WriteTrend encodes the combined table. Gaps are written as empty cells.
func WriteTrend(w io.Writer, rows []schema.TrendRow) error {
	return write(w, schema.TrendRow{}, len(rows), func(enc *csvutil.Encoder, i int) error {
		return enc.Encode(rows[i])
	})
}

func write(w io.Writer, header interface{}, n int, encode func(*csvutil.Encoder, int) error) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := encode(enc, i); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
