package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/vitalflow/internal/analytics"
)

// trendBarWidth is the column width a 10/10 mood bar fills.
const trendBarWidth = 20

type HistoryCmd struct {
	Insights bool `help:"Include AI insights in the entry list."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Repo.All()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("📝 No entries yet.")
		fmt.Println("Start tracking your mood by creating your first check-in.")
		return nil
	}

	summary := analytics.Summarize(entries)
	fmt.Printf("%d entries  ·  %.1f average mood  ·  %d best mood\n\n", summary.Total, summary.Average, summary.Best)

	fmt.Println("Mood trend:")
	for _, point := range analytics.TrendSeries(entries, trendBarWidth) {
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(analytics.MoodColor(point.Mood))).
			Render(strings.Repeat("█", point.Height))
		fmt.Printf("  %-7s %s %d\n", point.Label, bar, point.Mood)
	}
	fmt.Println()

	fmt.Println("All entries:")
	for _, entry := range entries {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(analytics.MoodColor(entry.Mood))).
			Bold(true).
			Render(fmt.Sprintf("%2d/10", entry.Mood))

		fmt.Printf("\n  %s  %s %s\n", analytics.FullDate(entry.Date), badge, moodEmoji(entry.Mood))
		fmt.Printf("    %s\n", entry.Journal)
		if c.Insights && entry.AIInsight != "" {
			fmt.Printf("    💡 %s\n", entry.AIInsight)
		}
	}

	return nil
}
