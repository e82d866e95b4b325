package colstats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csviz/internal/colstats"
	"csviz/internal/dataset"
)

func TestNumericValuesSkipsMalformed(t *testing.T) {
	rows := []dataset.Row{
		{"v": "1.5"},
		{"v": ""},
		{"v": "oops"},
		{"v": " 2.5 "},
		{"v": "NaN"},
		{"v": "-3"},
	}
	got := colstats.NumericValues(rows, "v")
	assert.Equal(t, []float64{1.5, 2.5, -3}, got)
}

func TestComputeOddCount(t *testing.T) {
	sum, err := colstats.Compute("v", []float64{4, 1, 3, 2, 10})
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Count)
	assert.InDelta(t, 4.0, sum.Mean, 1e-9)
	assert.InDelta(t, 3.0, sum.Median, 1e-9)
	assert.InDelta(t, 1.0, sum.Min, 1e-9)
	assert.InDelta(t, 10.0, sum.Max, 1e-9)
	assert.Greater(t, sum.Std, 0.0)
}

func TestComputeEvenCountMedianMidpoint(t *testing.T) {
	sum, err := colstats.Compute("v", []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, sum.Median, 1e-9)
}

func TestComputeSingleValue(t *testing.T) {
	sum, err := colstats.Compute("v", []float64{7})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, sum.Mean, 1e-9)
	assert.InDelta(t, 7.0, sum.Median, 1e-9)
	assert.Zero(t, sum.Std)
}

func TestComputeEmpty(t *testing.T) {
	_, err := colstats.Compute("v", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no numeric values")
}

func TestFrequencies(t *testing.T) {
	d := colstats.Frequencies([]float64{1, 2, 2, 3.5, 3.5, 3.5})
	assert.Equal(t, colstats.Distribution{1: 1, 2: 2, 3.5: 3}, d)
	assert.Equal(t, []float64{1, 2, 3.5}, d.SortedValues())
}
