package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	// Reset bound variables that persist across invocations
	chartColumn, chartFrom, chartTo, chartOutput = "", "", "", ""
	chartMinLabel, chartMaxLabel, chartTitle = "", "", ""
	chartStep, chartWidth, chartHeight = 0, 0, 0
	statColumn, statFrom, statTo = "", "", ""
	statDist = false
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeSampleCSV(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "readings.csv")
	content := "timestamp,sensor,value\n" +
		"01.03.2024,s1,10\n" +
		"\"02.03.2024, 08:15\",s1,12\n" +
		"03.03.2024,s2,11\n" +
		"04.03.2024,s2,14\n" +
		"05.03.2024,s1,not-a-number\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return p
}

func TestCLI_ChartExportsPNG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	csvPath := writeSampleCSV(t, home)
	out := filepath.Join(home, "out.png")

	if err := runCmd(t, "chart", csvPath, "--column", "value", "-o", out,
		"--min-label", "start", "--max-label", "end"); err != nil {
		t.Fatalf("chart: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestCLI_ColumnsAndStats(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	csvPath := writeSampleCSV(t, home)
	if err := runCmd(t, "columns", csvPath); err != nil {
		t.Fatalf("columns: %v", err)
	}
	if err := runCmd(t, "stats", csvPath, "--column", "value", "--distribution"); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if err := runCmd(t, "stats", csvPath, "--column", "value",
		"--from", "02.03.2024", "--to", "04.03.2024"); err != nil {
		t.Fatalf("stats with range: %v", err)
	}
}

func TestCLI_StatsUnknownColumn(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	csvPath := writeSampleCSV(t, home)
	if err := runCmd(t, "stats", csvPath, "--column", "nope"); err == nil {
		t.Fatal("expected unknown column error")
	}
}
