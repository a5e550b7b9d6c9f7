package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/vitalflow/internal/analytics"
)

const trendBarWidth = 16

var tabNames = []string{"Dashboard", "History", "Check In"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.tabRow())
	b.WriteString("\n\n")

	switch m.state {
	case StateDashboard:
		b.WriteString(m.dashboardView())
	case StateHistory:
		b.WriteString(m.historyView())
	case StateCheckin:
		b.WriteString(m.checkinView())
	}

	if m.statusMsg != "" {
		b.WriteString("\n" + statusStyle.Render(m.statusMsg))
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) tabRow() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if SessionState(i) == m.state {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) dashboardView() string {
	var b strings.Builder

	hour := m.clock.Now().Hour()
	greeting := "Good evening"
	switch {
	case hour < 12:
		greeting = "Good morning"
	case hour < 18:
		greeting = "Good afternoon"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s, %s", greeting, m.profile.Name)) + "\n")
	b.WriteString(mutedStyle.Render("Goal: "+m.profile.Goal) + "\n\n")

	summary := analytics.Summarize(m.entries)
	streak := analytics.Streak(m.entries, m.clock.Now())
	b.WriteString(fmt.Sprintf("%s streak   %s check-ins   %s avg mood\n\n",
		statStyle.Render(fmt.Sprintf("%d day", streak)),
		statStyle.Render(fmt.Sprintf("%d", summary.Total)),
		statStyle.Render(fmt.Sprintf("%.1f", summary.Average))))

	if points := analytics.TrendSeries(m.entries, trendBarWidth); len(points) > 0 {
		b.WriteString(titleStyle.Render("Mood trend") + "\n")
		for _, p := range points {
			bar := strings.Repeat("█", max(p.Height, 1))
			b.WriteString(fmt.Sprintf("%-8s %s %d\n",
				p.Label,
				moodStyle(analytics.MoodColor(p.Mood)).Render(bar),
				p.Mood))
		}
		b.WriteString("\n")
	}

	if m.today != nil {
		b.WriteString(titleStyle.Render("Today") + "\n")
		b.WriteString(fmt.Sprintf("%s %d/10  %s\n",
			moodEmoji(m.today.Mood), m.today.Mood, m.today.Journal))
		if m.today.AIInsight != "" {
			b.WriteString(insightStyle.Render(m.today.AIInsight) + "\n")
		}
	} else {
		b.WriteString(mutedStyle.Render("No check-in yet today. Press tab twice to check in.") + "\n")
	}

	return b.String()
}

func (m Model) historyView() string {
	if len(m.entries) == 0 {
		return mutedStyle.Render("No check-ins yet.")
	}
	view := m.historyList.View()
	if m.showInsight {
		if item, ok := m.historyList.SelectedItem().(Item); ok {
			insight := item.Entry.AIInsight
			if insight == "" {
				insight = "No insight for this entry."
			}
			view += "\n" + insightStyle.Render(insight)
		}
	}
	return view
}

func (m Model) checkinView() string {
	if m.today != nil {
		var b strings.Builder
		b.WriteString(titleStyle.Render("Already checked in today") + "\n\n")
		b.WriteString(fmt.Sprintf("%s %d/10  %s\n",
			moodEmoji(m.today.Mood), m.today.Mood, m.today.Journal))
		if m.today.AIInsight != "" {
			b.WriteString(insightStyle.Render(m.today.AIInsight) + "\n")
		}
		b.WriteString("\n" + mutedStyle.Render("Come back tomorrow for your next check-in.") + "\n")
		return b.String()
	}
	if m.form == nil {
		return mutedStyle.Render("Loading form...")
	}
	return m.form.View()
}

func moodEmoji(mood int) string {
	if mood >= 1 && mood <= len(moodEmojis) {
		return moodEmojis[mood-1]
	}
	return "❓"
}
