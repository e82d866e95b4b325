package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"csviz/internal/chart"
	"csviz/internal/colstats"
	"csviz/internal/utils"
)

var (
	chartColumn    string
	chartFrom      string
	chartTo        string
	chartDelimiter string
	chartSheet     string
	chartStep      int
	chartTitle     string
	chartMinLabel  string
	chartMaxLabel  string
	chartWidth     int
	chartHeight    int
	chartOutput    string
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Render a histogram PNG with mean/median reference lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0], chartDelimiter, chartSheet)
		if err != nil {
			return err
		}
		rows, err := filteredRows(ds, chartFrom, chartTo)
		if err != nil {
			return err
		}
		values, err := selectedValues(ds, rows, chartColumn)
		if err != nil {
			return err
		}
		sum, err := colstats.Compute(chartColumn, values)
		if err != nil {
			return err
		}

		step := chartStep
		if step <= 0 && cfg != nil {
			step = cfg.BinStep
		}
		hist, err := chart.NewHistogram(values, step)
		if err != nil {
			return err
		}

		opt := chart.Options{
			Title:    chartTitle,
			XLabel:   chartColumn,
			MinLabel: chartMinLabel,
			MaxLabel: chartMaxLabel,
			Width:    float64(chartWidth),
			Height:   float64(chartHeight),
		}
		if opt.Title == "" {
			opt.Title = fmt.Sprintf("%s — %s", ds.Name, chartColumn)
		}
		if cfg != nil {
			if opt.Width <= 0 {
				opt.Width = float64(cfg.ChartWidth)
			}
			if opt.Height <= 0 {
				opt.Height = float64(cfg.ChartHeight)
			}
		}

		out := chartOutput
		if out == "" {
			dir := ""
			if cfg != nil && cfg.OutputDir != "" {
				dir = cfg.OutputDir
				if err := utils.EnsureDir(dir); err != nil {
					return fmt.Errorf("output dir: %w", err)
				}
			}
			out = utils.DefaultChartName(dir)
		}
		if err := chart.RenderFile(hist, sum, opt, out); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote chart to %s (%d values, mean %.4g, median %.4g)\n", out, sum.Count, sum.Mean, sum.Median)
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartColumn, "column", "", "column to chart (required)")
	chartCmd.Flags().StringVar(&chartFrom, "from", "", "start of date range, DD.MM.YYYY[, HH:MM]")
	chartCmd.Flags().StringVar(&chartTo, "to", "", "end of date range, inclusive")
	chartCmd.Flags().StringVar(&chartDelimiter, "delimiter", "", "CSV delimiter: ','|';'|'tab' (default: sniff)")
	chartCmd.Flags().StringVar(&chartSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	chartCmd.Flags().IntVar(&chartStep, "step", 0, "integer spacing of histogram labels (default from config)")
	chartCmd.Flags().StringVar(&chartTitle, "title", "", "chart title (default: file — column)")
	chartCmd.Flags().StringVar(&chartMinLabel, "min-label", "", "custom label for the lower axis end")
	chartCmd.Flags().StringVar(&chartMaxLabel, "max-label", "", "custom label for the upper axis end")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in points (default from config)")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "chart height in points (default from config)")
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "output PNG path (default: generated name)")
	_ = chartCmd.MarkFlagRequired("column")
	rootCmd.AddCommand(chartCmd)
}
