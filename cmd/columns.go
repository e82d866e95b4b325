package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	colDelimiter string
	colSheet     string
)

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "List columns with their inferred classification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0], colDelimiter, colSheet)
		if err != nil {
			return err
		}
		fmt.Printf("File: %s\n", ds.Name)
		fmt.Printf("Rows: %d\n", len(ds.Rows))
		fmt.Printf("Columns: %d\n\n", len(ds.Headers))
		for _, c := range ds.Columns() {
			fmt.Printf("- %s: %s (non-empty %d, missing %d", c.Name, c.Kind, c.NonEmpty, c.Missing)
			if c.Kind == "numeric" {
				fmt.Printf(", numeric %.0f%%", c.NumericRatio*100)
			}
			fmt.Println(")")
		}
		if dateCol, ok := ds.DateColumn(); ok {
			fmt.Printf("\n✓ Date column detected: %s\n", dateCol)
		}
		return nil
	},
}

func init() {
	columnsCmd.Flags().StringVar(&colDelimiter, "delimiter", "", "CSV delimiter: ','|';'|'tab' (default: sniff)")
	columnsCmd.Flags().StringVar(&colSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	rootCmd.AddCommand(columnsCmd)
}
