// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteDashboard prints the scan result as a terminal dashboard.
func (ow *OutWriter) WriteDashboard(result *schema.ScanResult, cfg *contract.Config, duration time.Duration) error {
	return PrintDashboardResults(result, cfg, duration)
}

// WriteExport writes the scan result as a JSON export document.
func (ow *OutWriter) WriteExport(result *schema.ScanResult, cfg *contract.Config, duration time.Duration) error {
	return PrintExportResults(result, cfg, duration)
}
