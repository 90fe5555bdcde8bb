package outwriter

import (
	"os"

	"github.com/gitpulse/gitpulse/internal/contract"
	"golang.org/x/term"
)

// GetMaxTablePathWidth calculates the maximum width for the repository column
// in table output based on terminal width.
func GetMaxTablePathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 30 // Commits + Files + Changes with borders/padding

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 12

	// Calculate available space for the repository column
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable column width
		return 15
	}
	if available > 70 {
		// Maximum column width to prevent overly long paths
		return 70
	}
	return available
}
