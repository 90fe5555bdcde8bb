package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	bannerWidth = 70 // Width of the ═ banner framing the dashboard

	// highActivityCommits is the threshold above which a repository row is
	// drawn green instead of yellow.
	highActivityCommits = 5
)

// dashboardPalette holds the Sprint closures used across dashboard sections.
// With colors disabled every closure is plain fmt.Sprint.
type dashboardPalette struct {
	cyan    func(...any) string
	green   func(...any) string
	yellow  func(...any) string
	dim     func(...any) string
	section func(...any) string
	title   func(...any) string
}

func newDashboardPalette(cfg *contract.Config) dashboardPalette {
	if !cfg.UseColors {
		return dashboardPalette{
			cyan:    fmt.Sprint,
			green:   fmt.Sprint,
			yellow:  fmt.Sprint,
			dim:     fmt.Sprint,
			section: fmt.Sprint,
			title:   fmt.Sprint,
		}
	}
	return dashboardPalette{
		cyan:    color.New(color.FgCyan).SprintFunc(),
		green:   color.New(color.FgGreen).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		dim:     color.New(color.FgHiBlack).SprintFunc(),
		section: color.New(color.FgYellow, color.Bold).SprintFunc(),
		title:   color.New(color.FgCyan, color.Bold).SprintFunc(),
	}
}

// sectionTitle prefixes an emoji when emojis are enabled.
func sectionTitle(emoji, text string, cfg *contract.Config) string {
	if cfg.UseEmojis {
		return emoji + " " + text
	}
	return text
}

// writeDashboard renders the full terminal dashboard for a scan result.
func writeDashboard(w io.Writer, result *schema.ScanResult, cfg *contract.Config, duration time.Duration) error {
	pal := newDashboardPalette(cfg)

	if err := writeBanner(w, cfg, pal); err != nil {
		return err
	}
	if err := writeSummarySection(w, result, cfg, pal); err != nil {
		return err
	}
	if err := writeBreakdownSection(w, result, cfg, pal); err != nil {
		return err
	}
	if err := writeChartSection(w, result, cfg, pal); err != nil {
		return err
	}
	if err := writeRecentSection(w, result, cfg, pal); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n\n", pal.cyan(strings.Repeat("═", bannerWidth))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scan completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeBanner frames the dashboard title between two full-width rules.
func writeBanner(w io.Writer, cfg *contract.Config, pal dashboardPalette) error {
	rule := pal.cyan(strings.Repeat("═", bannerWidth))
	title := sectionTitle("🔥", "GIT ACTIVITY DASHBOARD", cfg)
	// Centering treats the emoji as a single column.
	pad := max((bannerWidth-len([]rune(title)))/2, 0)
	_, err := fmt.Fprintf(w, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", pad), pal.title(title), rule)
	return err
}

// writeSummarySection prints the cross-repository totals.
func writeSummarySection(w io.Writer, result *schema.ScanResult, cfg *contract.Config, pal dashboardPalette) error {
	if _, err := fmt.Fprintf(w, "%s\n  %s\n", pal.section(sectionTitle("📊", "SUMMARY", cfg)), pal.dim(strings.Repeat("─", 40))); err != nil {
		return err
	}

	rows := []struct {
		label string
		value int
		tint  func(...any) string
	}{
		{"Repositories scanned:", result.Summary.ReposScanned, pal.cyan},
		{"Active repositories:", result.ActiveRepos, pal.green},
		{fmt.Sprintf("Total commits (%d days):", result.WindowDays), result.Summary.TotalCommits, pal.yellow},
		{"Files changed:", result.Summary.FilesChanged, pal.cyan},
		{"Lines added:", result.Summary.LinesAdded, pal.green},
		{"Lines removed:", result.Summary.LinesRemoved, pal.yellow},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "  %s %s\n", pal.dim(fmt.Sprintf("%-25s", row.label)), row.tint(fmt.Sprintf("%8d", row.value))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeBreakdownSection renders the per-repository table. Repositories with
// no commits in the window are left out, matching the summary's active count.
func writeBreakdownSection(w io.Writer, result *schema.ScanResult, cfg *contract.Config, pal dashboardPalette) error {
	if _, err := fmt.Fprintf(w, "%s\n", pal.section(sectionTitle("📁", "REPOSITORY BREAKDOWN", cfg))); err != nil {
		return err
	}

	active := make([]schema.RepositoryRecord, 0, len(result.Repos))
	for _, repo := range result.Repos {
		if repo.Active() {
			active = append(active, repo)
		}
	}
	if len(active) == 0 {
		_, err := fmt.Fprintf(w, "  %s\n\n", pal.dim("No repository activity in this window."))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Repository", "Commits", "Files", "Changes"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTablePathWidth(cfg)
	dupes := duplicateNames(active)
	var data [][]string
	for _, repo := range active {
		name := contract.TruncateMessage(repo.Name, nameWidth)
		if dupes[repo.Name] {
			// Same-name checkouts show their path instead
			name = contract.TruncatePath(repo.Path, nameWidth)
		}
		tint := pal.yellow
		if repo.Commits > highActivityCommits {
			tint = pal.green
		}
		data = append(data, []string{
			tint(name),
			strconv.Itoa(repo.Commits),
			strconv.Itoa(repo.FilesChanged),
			pal.cyan(fmt.Sprintf("+%d/-%d", repo.LinesAdded, repo.LinesRemoved)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// duplicateNames reports which repository names appear more than once.
func duplicateNames(repos []schema.RepositoryRecord) map[string]bool {
	counts := make(map[string]int, len(repos))
	for _, repo := range repos {
		counts[repo.Name]++
	}
	dupes := make(map[string]bool)
	for name, n := range counts {
		if n > 1 {
			dupes[name] = true
		}
	}
	return dupes
}

// writeChartSection prints the merged daily activity chart.
func writeChartSection(w io.Writer, result *schema.ScanResult, cfg *contract.Config, pal dashboardPalette) error {
	title := fmt.Sprintf("DAILY ACTIVITY (last %s)", schema.FormatPeriod(result.WindowDays))
	if _, err := fmt.Fprintf(w, "%s\n  %s\n", pal.section(sectionTitle("📈", title, cfg)), pal.dim(strings.Repeat("─", 60))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, buildActivityChart(result, cfg)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// recentEntry tags a commit with the repository it came from.
type recentEntry struct {
	repo   string
	commit schema.CommitInfo
}

// writeRecentSection lists the newest commits across all repositories.
func writeRecentSection(w io.Writer, result *schema.ScanResult, cfg *contract.Config, pal dashboardPalette) error {
	if _, err := fmt.Fprintf(w, "%s\n  %s\n", pal.section(sectionTitle("📝", "RECENT COMMITS", cfg)), pal.dim(strings.Repeat("─", 60))); err != nil {
		return err
	}

	entries := collectRecentCommits(result.Repos)
	if len(entries) == 0 {
		_, err := fmt.Fprintf(w, "  %s\n\n", pal.dim("No commits in this window."))
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "  %s %s %-*s %s\n",
			pal.dim(entry.commit.Date.Format(schema.ClockFormat)),
			pal.cyan(fmt.Sprintf("%-15s", contract.TruncateMessage(entry.repo, 15))),
			schema.MaxMessageWidth,
			contract.TruncateMessage(entry.commit.Message, schema.MaxMessageWidth),
			pal.dim(schema.AbbreviateName(entry.commit.Author)),
		); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// collectRecentCommits flattens per-repository recent lists into a single
// cross-repository list, newest first, capped at MaxRecentDisplay.
func collectRecentCommits(repos []schema.RepositoryRecord) []recentEntry {
	var entries []recentEntry
	for _, repo := range repos {
		for _, commit := range repo.RecentCommits {
			entries = append(entries, recentEntry{repo: repo.Name, commit: commit})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].commit.Date.After(entries[j].commit.Date)
	})
	if len(entries) > schema.MaxRecentDisplay {
		entries = entries[:schema.MaxRecentDisplay]
	}
	return entries
}
