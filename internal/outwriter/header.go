package outwriter

import (
	"fmt"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// LogScanHeader prints a concise, 2-line header before a scan starts.
func LogScanHeader(cfg *contract.Config) {
	roots := "current directory"
	if len(cfg.ScanRoots) > 0 {
		roots = summarizeRoots(cfg.ScanRoots)
	}

	// Line 1: where the walk starts
	// Line 2: the actual date range being aggregated
	window := fmt.Sprintf("%s → %s (%s)",
		cfg.CutoffTime.Format(schema.DayFormat),
		time.Now().Format(schema.DayFormat),
		schema.FormatPeriod(cfg.LookbackDays))
	if cfg.UseEmojis {
		fmt.Printf("🔎 Scanning: %s\n", roots)
		fmt.Printf("📅 Window: %s\n", window)
	} else {
		fmt.Printf("Scanning: %s\n", roots)
		fmt.Printf("Window: %s\n", window)
	}
}

// LogRepositoriesFound reports how many repositories the walk located.
func LogRepositoriesFound(cfg *contract.Config, count int) {
	if cfg.UseEmojis {
		fmt.Printf("📁 Found %d repositories\n\n", count)
	} else {
		fmt.Printf("Found %d repositories\n\n", count)
	}
}

// summarizeRoots shows the first root and counts the rest.
func summarizeRoots(roots []string) string {
	if len(roots) == 1 {
		return roots[0]
	}
	return fmt.Sprintf("%s (+%d more)", roots[0], len(roots)-1)
}
