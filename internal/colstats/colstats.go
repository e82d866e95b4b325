// Package colstats computes the descriptive statistics shown for a selected
// numeric column: mean, median, standard deviation and the frequency
// distribution of values as encountered.
package colstats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"csviz/internal/dataset"
	"csviz/internal/logging"
)

// Summary holds the descriptive statistics for one column slice.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
}

// Distribution maps a numeric value, as encountered, to its occurrence count.
type Distribution map[float64]int

// NumericValues extracts the parseable numeric values of one column from the
// given rows, in row order. Malformed and empty cells are skipped.
func NumericValues(rows []dataset.Row, column string) []float64 {
	vals := make([]float64, 0, len(rows))
	skipped := 0
	for _, r := range rows {
		v := strings.TrimSpace(r[column])
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			skipped++
			continue
		}
		vals = append(vals, f)
	}
	if skipped > 0 {
		logging.L().Debugw("skipped malformed values", "column", column, "count", skipped)
	}
	return vals
}

// Compute builds a Summary over the given values.
func Compute(column string, values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("column %q has no numeric values in range", column)
	}
	data := stats.Float64Data(values)
	mean, err := data.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("mean of %q: %w", column, err)
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, fmt.Errorf("median of %q: %w", column, err)
	}
	min, err := data.Min()
	if err != nil {
		return Summary{}, fmt.Errorf("min of %q: %w", column, err)
	}
	max, err := data.Max()
	if err != nil {
		return Summary{}, fmt.Errorf("max of %q: %w", column, err)
	}
	s := Summary{
		Column: column,
		Count:  len(values),
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	return s, nil
}

// Frequencies counts occurrences per value.
func Frequencies(values []float64) Distribution {
	d := make(Distribution, len(values))
	for _, v := range values {
		d[v]++
	}
	return d
}

// SortedValues returns the distinct values of the distribution in ascending
// order, for stable printing.
func (d Distribution) SortedValues() []float64 {
	out := make([]float64, 0, len(d))
	for v := range d {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
