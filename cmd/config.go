package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "csviz/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set csviz configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("delimiter: %s\n", displayDelimiter(cfg.Delimiter))
		fmt.Printf("bin_step: %d\n", cfg.BinStep)
		fmt.Printf("chart_width: %d\n", cfg.ChartWidth)
		fmt.Printf("chart_height: %d\n", cfg.ChartHeight)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "bin_step":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("bin_step must be a positive integer, got %q", val)
			}
			cfg.BinStep = n
		case "chart_width":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("chart_width must be a positive integer, got %q", val)
			}
			cfg.ChartWidth = n
		case "chart_height":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("chart_height must be a positive integer, got %q", val)
			}
			cfg.ChartHeight = n
		case "output_dir":
			cfg.OutputDir = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func displayDelimiter(s string) string {
	if s == "" {
		return "(sniff)"
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
