package dataset

import "fmt"

// MissingFileError - a required data file does not exist
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing data file %s", e.Path)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// MalformedInputError - a data file does not match its column schema. Line is
// the 1-based line of the offending record, zero when the whole file is at fault.
type MalformedInputError struct {
	Path   string
	Line   int
	Column string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input " + e.Path
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	return msg + ": " + e.Reason
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func malformed(path string, line int, column, reason string, args ...interface{}) *MalformedInputError {
	return &MalformedInputError{
		Path:   path,
		Line:   line,
		Column: column,
		Reason: fmt.Sprintf(reason, args...),
	}
}
