package outwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// exportTimeFormat names export documents down to the second.
const exportTimeFormat = "20060102-150405"

// ExportFileName returns the timestamped name of an export document.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("activity-%s.json", t.Format(exportTimeFormat))
}

// PrintExportResults serializes the scan result into a timestamped JSON
// document under the configured export directory. Any write failure is
// returned to the caller, where it is fatal.
func PrintExportResults(result *schema.ScanResult, cfg *contract.Config, _ time.Duration) error {
	doc := schema.NewExportDocument(*result)

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return fmt.Errorf("cannot create export directory %s: %w", cfg.ExportDir, err)
	}
	outputFile := filepath.Join(cfg.ExportDir, ExportFileName(result.GeneratedAt))

	if err := writeWithFile(outputFile, cfg, func(w io.Writer) error {
		return writeJSON(w, doc)
	}, "Wrote JSON export"); err != nil {
		return fmt.Errorf("error writing JSON export: %w", err)
	}
	return nil
}
