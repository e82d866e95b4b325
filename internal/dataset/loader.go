package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csviz/internal/logging"
)

// Loader selects and reads one input format into a Dataset.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string) (*Dataset, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// LoadFile selects a loader based on filename. Unknown extensions fall back
// to CSV with delimiter sniffing.
func LoadFile(path string) (*Dataset, error) {
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path)
		}
	}
	return LoadCSV(path, 0)
}

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

func (csvLoader) Load(path string) (*Dataset, error) {
	delim := rune(0)
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		delim = '\t'
	}
	return LoadCSV(path, delim)
}

// LoadCSV reads a delimited text file with the quote-aware line tokenizer.
// A delim of 0 sniffs the delimiter from the header line.
func LoadCSV(path string, delim rune) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	lines := strings.Split(strings.TrimPrefix(string(data), "\ufeff"), "\n")
	// Drop trailing blank lines; blank lines inside the body are skipped below.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty file: %s", filepath.Base(path))
	}
	if delim == 0 {
		delim = sniffDelimiter(lines[0])
	}
	headers := uniqueHeaders(SplitLine(lines[0], delim))
	ds := &Dataset{Name: filepath.Base(path), Headers: headers}
	short := 0
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := SplitLine(line, delim)
		if len(fields) < len(headers) {
			short++
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = fields[i]
			} else {
				row[h] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	if short > 0 {
		logging.L().Debugw("padded short rows", "file", ds.Name, "rows", short)
	}
	logging.L().Debugw("loaded dataset", "file", ds.Name, "columns", len(ds.Headers), "rows", len(ds.Rows))
	return ds, nil
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}
