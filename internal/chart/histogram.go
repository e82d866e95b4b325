// Package chart builds the histogram model over an integer-spaced label axis
// and renders it to a PNG with annotated reference lines.
package chart

import (
	"fmt"
	"math"
)

// Histogram buckets values onto a categorical axis of integer-spaced labels.
// Each value is rounded to its nearest bin; Labels[i] and Counts[i] describe
// one bar.
type Histogram struct {
	Labels []int
	Counts []int
	Step   int
}

// NewHistogram bins values with the given integer step. The axis runs from
// floor(min) to ceil(max) of the raw values, snapped outward to step
// multiples, so reference lines for statistics near the data extremes keep
// their interpolated position even when the extreme values round inward.
// A step below 1 is treated as 1.
func NewHistogram(values []float64, step int) (*Histogram, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to bin")
	}
	if step < 1 {
		step = 1
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	lo := step * int(math.Floor(math.Floor(minVal)/float64(step)))
	hi := step * int(math.Ceil(math.Ceil(maxVal)/float64(step)))
	n := (hi-lo)/step + 1
	h := &Histogram{Labels: make([]int, n), Counts: make([]int, n), Step: step}
	for i := range h.Labels {
		h.Labels[i] = lo + i*step
	}
	// Rounding a value moves it at most step/2, so every bin stays inside
	// the snapped axis.
	for _, v := range values {
		b := int(math.Floor(v/float64(step)+0.5)) * step
		h.Counts[(b-lo)/step]++
	}
	return h, nil
}

// AxisPosition maps an arbitrary statistic value onto the fractional bar
// index of the label axis by linear interpolation between adjacent labels.
// Values outside the axis clamp to its ends, so a reference line always
// lands on the chart.
func (h *Histogram) AxisPosition(v float64) float64 {
	first := float64(h.Labels[0])
	pos := (v - first) / float64(h.Step)
	if pos < 0 {
		return 0
	}
	if last := float64(len(h.Labels) - 1); pos > last {
		return last
	}
	return pos
}

// MaxCount returns the tallest bar, for scaling reference lines.
func (h *Histogram) MaxCount() int {
	max := 0
	for _, c := range h.Counts {
		if c > max {
			max = c
		}
	}
	return max
}
