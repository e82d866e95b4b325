package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "csviz/internal/config"
	"csviz/internal/logging"
)

var (
	// Global flags (wired to config/viper in loadConfig)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "csviz",
	Short: "csviz: column statistics and histogram charts for CSV files",
	Long: `csviz ingests a CSV, TSV or XLSX file, infers which columns hold numbers
and which column holds dates, computes descriptive statistics for a selected
column within an optional date range, and exports an annotated histogram PNG.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.csviz/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	logging.Init(debug)
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults still allow every command to run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = &cfgpkg.Global{BinStep: 1, ChartWidth: 640, ChartHeight: 400}
		return
	}
	cfg = c
}
