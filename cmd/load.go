package cmd

import (
	"fmt"
	"strings"

	"csviz/internal/dataset"
)

// loadDataset resolves the per-command delimiter/sheet flags against config
// and reads the input file into a Dataset.
func loadDataset(path, delimiter, sheet string) (*dataset.Dataset, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return dataset.LoadXLSX(path, sheet)
	}
	if delimiter == "" && cfg != nil {
		delimiter = cfg.Delimiter
	}
	delim, err := parseDelimiter(delimiter)
	if err != nil {
		return nil, err
	}
	if delim != 0 {
		return dataset.LoadCSV(path, delim)
	}
	return dataset.LoadFile(path)
}

// parseDelimiter maps a flag value to a delimiter rune; 0 means sniff.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}
