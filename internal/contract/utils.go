package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Activity intensity label constants.
const (
	PeakValue     = "Peak"     // Peak value
	HighValue     = "High"     // High value
	ModerateValue = "Moderate" // Moderate value
	QuietValue    = "Quiet"    // Quiet value
)

// Color variables for console output.
var (
	PeakColor     = color.New(color.FgRed, color.Bold)     // peakColor marks the busiest days.
	HighColor     = color.New(color.FgMagenta, color.Bold) // highColor marks strong activity.
	ModerateColor = color.New(color.FgYellow)              // moderateColor marks ordinary activity, not bold.
	QuietColor    = color.New(color.FgCyan)                // quietColor marks low, informational signal.
)

// GetPlainLabel returns a plain text label indicating how busy a day was
// relative to the peak day of the window. This is the core logic used for
// bar coloring and textual summaries.
func GetPlainLabel(count, peak int) string {
	if peak <= 0 || count <= 0 {
		return QuietValue
	}
	ratio := float64(count) / float64(peak)
	switch {
	case ratio >= 0.75:
		return PeakValue
	case ratio >= 0.5:
		return HighValue
	case ratio >= 0.25:
		return ModerateValue
	default:
		return QuietValue
	}
}

// GetIntensityColor returns the color used to render a day's activity bar.
// It uses GetPlainLabel to determine the level, and then maps it to a color.
func GetIntensityColor(count, peak int) *color.Color {
	switch GetPlainLabel(count, peak) {
	case PeakValue:
		return PeakColor
	case HighValue:
		return HighColor
	case ModerateValue:
		return ModerateColor
	default: // "Quiet"
		return QuietColor
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// IsExcludedName reports whether a directory name matches any exclude entry.
// Matching is by exact name, never glob or substring, so "vendor" skips only
// directories named exactly vendor.
func IsExcludedName(name string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}
		if name == ex {
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitpulse_cache.db"
	}
	return filepath.Join(homeDir, ".gitpulse_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitpulse_history.db"
	}
	return filepath.Join(homeDir, ".gitpulse_history.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
// Without this check, small maxWidth values could cause slice bounds errors in the truncation calculation.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// TruncateMessage truncates a commit subject to a maximum width with ellipsis suffix.
// The same maxWidth > 3 bound applies as for TruncatePath.
func TruncateMessage(msg string, maxWidth int) string {
	runes := []rune(msg)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return msg
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
