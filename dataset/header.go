package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// layout describes one accepted column schema. Columns maps a source header
// name onto the canonical name used by the csv struct tags.
type layout struct {
	name     string
	marker   string
	required []string
	columns  map[string]string
}

func (l layout) canonical(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if c, ok := l.columns[h]; ok {
			out[i] = c
		} else {
			out[i] = h
		}
	}
	return out
}

func (l layout) missing(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, r := range l.required {
		if !present[r] {
			missing = append(missing, r)
		}
	}
	return missing
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	return cr
}

// readHeader returns the normalised first record of the file.
func readHeader(path string, cr *csv.Reader) ([]string, error) {
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed(path, 0, "", "empty file")
	}
	if err != nil {
		e := malformed(path, 1, "", "unreadable header: %s", err)
		e.Err = err
		return nil, e
	}

	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out, nil
}

// detect picks the first layout whose marker column is in the header and
// checks its required columns.
func detect(path string, header []string, layouts ...layout) (layout, error) {
	for _, l := range layouts {
		for _, h := range header {
			if h != l.marker {
				continue
			}
			if missing := l.missing(header); len(missing) > 0 {
				return layout{}, malformed(path, 1, missing[0], "required column %q is absent from %s layout", missing[0], l.name)
			}
			return l, nil
		}
	}
	return layout{}, malformed(path, 1, layouts[0].marker, "required column %q is absent", layouts[0].marker)
}

// recordLine returns the line of the record read last. Parse errors carry
// their own position since the reader keeps no field positions for them.
func recordLine(cr *csv.Reader, err error) int {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return perr.StartLine
	}
	line, _ := cr.FieldPos(0)
	return line
}
