package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"csviz/internal/colstats"
	"csviz/internal/dataset"
	"csviz/internal/dates"
)

var (
	statColumn    string
	statFrom      string
	statTo        string
	statDelimiter string
	statSheet     string
	statDist      bool
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Compute mean, median and the value distribution of a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0], statDelimiter, statSheet)
		if err != nil {
			return err
		}
		rows, err := filteredRows(ds, statFrom, statTo)
		if err != nil {
			return err
		}
		values, err := selectedValues(ds, rows, statColumn)
		if err != nil {
			return err
		}
		sum, err := colstats.Compute(statColumn, values)
		if err != nil {
			return err
		}
		fmt.Printf("Column: %s (%d values)\n", sum.Column, sum.Count)
		fmt.Printf("Mean:   %.4g\n", sum.Mean)
		fmt.Printf("Median: %.4g\n", sum.Median)
		fmt.Printf("Std:    %.4g\n", sum.Std)
		fmt.Printf("Range:  %.4g .. %.4g\n", sum.Min, sum.Max)
		if statDist {
			dist := colstats.Frequencies(values)
			fmt.Println("\nDistribution:")
			for _, v := range dist.SortedValues() {
				fmt.Printf("  %s: %d\n", strconv.FormatFloat(v, 'g', -1, 64), dist[v])
			}
		}
		return nil
	},
}

// filteredRows applies the --from/--to window using the detected date column.
func filteredRows(ds *dataset.Dataset, from, to string) ([]dataset.Row, error) {
	r, err := dates.ParseRange(from, to)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return ds.Rows, nil
	}
	dateCol, ok := ds.DateColumn()
	if !ok {
		return nil, fmt.Errorf("no date column detected in %s; cannot apply --from/--to", ds.Name)
	}
	return ds.FilterByDate(dateCol, r), nil
}

// selectedValues validates the column choice and extracts its numeric values.
func selectedValues(ds *dataset.Dataset, rows []dataset.Row, column string) ([]float64, error) {
	if column == "" {
		return nil, fmt.Errorf("--column is required (numeric columns: %v)", ds.NumericColumns())
	}
	if !ds.HasColumn(column) {
		return nil, fmt.Errorf("no column %q in %s (columns: %v)", column, ds.Name, ds.Headers)
	}
	if !ds.IsNumericColumn(column) {
		fmt.Fprintf(os.Stderr, "⚠ Warning: column %q is not classified as numeric (%.0f%% parseable)\n",
			column, ds.NumericRatio(column)*100)
	}
	return colstats.NumericValues(rows, column), nil
}

func init() {
	statsCmd.Flags().StringVar(&statColumn, "column", "", "column to analyze (required)")
	statsCmd.Flags().StringVar(&statFrom, "from", "", "start of date range, DD.MM.YYYY[, HH:MM]")
	statsCmd.Flags().StringVar(&statTo, "to", "", "end of date range, inclusive")
	statsCmd.Flags().StringVar(&statDelimiter, "delimiter", "", "CSV delimiter: ','|';'|'tab' (default: sniff)")
	statsCmd.Flags().StringVar(&statSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	statsCmd.Flags().BoolVar(&statDist, "distribution", false, "print the full value distribution")
	_ = statsCmd.MarkFlagRequired("column")
	rootCmd.AddCommand(statsCmd)
}
