package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
)

const logPrefix = "dataset"

// readFile opens path, hands the whole file to read and closes it before
// returning.
func readFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithFields(log.Fields{"prefix": logPrefix, "path": path}).Error("data file not found")
			return &MissingFileError{Path: path, Err: err}
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return read(f)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
