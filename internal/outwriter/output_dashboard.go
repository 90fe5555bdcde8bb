package outwriter

import (
	"os"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// PrintDashboardResults renders the scan result as the terminal dashboard.
func PrintDashboardResults(result *schema.ScanResult, cfg *contract.Config, duration time.Duration) error {
	return writeDashboard(os.Stdout, result, cfg, duration)
}
