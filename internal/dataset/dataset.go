// Package dataset holds the in-memory table model: ordered headers plus row
// records keyed by header, with column classification on top. A Dataset is
// built once per file load and replaced wholesale on the next load.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"csviz/internal/dates"
)

// NumericThreshold is the share of non-empty values that must parse as finite
// numbers (or as supported dates) for a column to classify as numeric (or as
// the date column).
const NumericThreshold = 0.8

// Row maps a header name to the raw cell string for one record.
type Row map[string]string

// Dataset is one loaded table.
type Dataset struct {
	Name    string
	Headers []string
	Rows    []Row
}

// ColumnInfo is the classification summary for a single column.
type ColumnInfo struct {
	Name         string
	Kind         string // numeric|date|text
	NonEmpty     int
	Missing      int
	NumericRatio float64
}

// HasColumn reports whether the header exists.
func (d *Dataset) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// NumericRatio returns the share of non-empty values in the column that parse
// as finite floats. A column with no non-empty values has ratio 0.
func (d *Dataset) NumericRatio(name string) float64 {
	nonEmpty, numeric := 0, 0
	for _, r := range d.Rows {
		v := strings.TrimSpace(r[name])
		if v == "" {
			continue
		}
		nonEmpty++
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			numeric++
		}
	}
	if nonEmpty == 0 {
		return 0
	}
	return float64(numeric) / float64(nonEmpty)
}

// IsNumericColumn applies the classification threshold to one column.
func (d *Dataset) IsNumericColumn(name string) bool {
	return d.NumericRatio(name) >= NumericThreshold
}

// NumericColumns lists headers classified as numeric, in header order.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, h := range d.Headers {
		if d.IsNumericColumn(h) {
			out = append(out, h)
		}
	}
	return out
}

// DateColumn returns the first column whose non-empty values match the
// supported date shapes at the classification threshold, if any.
func (d *Dataset) DateColumn() (string, bool) {
	for _, h := range d.Headers {
		nonEmpty, matched := 0, 0
		for _, r := range d.Rows {
			v := strings.TrimSpace(r[h])
			if v == "" {
				continue
			}
			nonEmpty++
			if dates.Matches(v) {
				matched++
			}
		}
		if nonEmpty > 0 && float64(matched)/float64(nonEmpty) >= NumericThreshold {
			return h, true
		}
	}
	return "", false
}

// Columns classifies every column. Date detection wins over numeric so a
// column of timestamps never reads as text even when it is the date column.
func (d *Dataset) Columns() []ColumnInfo {
	dateCol, hasDate := d.DateColumn()
	out := make([]ColumnInfo, 0, len(d.Headers))
	for _, h := range d.Headers {
		info := ColumnInfo{Name: h, Kind: "text"}
		for _, r := range d.Rows {
			if strings.TrimSpace(r[h]) == "" {
				info.Missing++
			} else {
				info.NonEmpty++
			}
		}
		info.NumericRatio = d.NumericRatio(h)
		switch {
		case hasDate && h == dateCol:
			info.Kind = "date"
		case info.NumericRatio >= NumericThreshold && info.NonEmpty > 0:
			info.Kind = "numeric"
		}
		out = append(out, info)
	}
	return out
}

// FilterByDate returns the rows whose value in dateCol falls inside r. Rows
// with an empty or unparseable date cell are excluded while a filter is
// active. A zero range keeps every row.
func (d *Dataset) FilterByDate(dateCol string, r dates.Range) []Row {
	if r.IsZero() {
		return d.Rows
	}
	var out []Row
	for _, row := range d.Rows {
		t, err := dates.Parse(row[dateCol])
		if err != nil {
			continue
		}
		if r.Contains(t) {
			out = append(out, row)
		}
	}
	return out
}

// uniqueHeaders trims header cells and disambiguates duplicates by suffixing
// an ordinal, keeping row lookup by header well defined.
func uniqueHeaders(raw []string) []string {
	seen := map[string]int{}
	out := make([]string, len(raw))
	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
			seen[name]++
		}
		out[i] = name
	}
	return out
}
