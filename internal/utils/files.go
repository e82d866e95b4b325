package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// EnsureDir ensures the provided directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// SafeWriteFile writes data to a temp file and atomically renames it into place.
func SafeWriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// DefaultChartName builds a unique export filename under dir, e.g.
// chart-20260115-a1b2c3d4.png.
func DefaultChartName(dir string) string {
	name := fmt.Sprintf("chart-%s-%s.png", time.Now().Format("20060102"), uuid.NewString()[:8])
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
