// Package analytics derives streaks, summary stats, mood bands, and trend
// series from a check-in list. Everything here is pure: callers pass the
// entries and, where "today" matters, the reference time.
package analytics

import (
	"time"

	"github.com/julianstephens/vitalflow/internal/constants"
	"github.com/julianstephens/vitalflow/internal/models"
)

// Summary holds the headline stats shown on the home and history screens.
type Summary struct {
	Total   int
	Average float64 // 0 when there are no entries
	Best    int     // 0 when there are no entries
}

// Summarize computes total, arithmetic mean, and best mood across entries.
func Summarize(entries []models.CheckIn) Summary {
	s := Summary{Total: len(entries)}
	if len(entries) == 0 {
		return s
	}

	sum := 0
	for _, entry := range entries {
		sum += entry.Mood
		if entry.Mood > s.Best {
			s.Best = entry.Mood
		}
	}
	s.Average = float64(sum) / float64(len(entries))
	return s
}

// Streak counts consecutive calendar days with a check-in, walking backward
// from today. A missing entry for today makes the streak 0 immediately; the
// walk stops at the first gap wherever it falls, and never looks back more
// than StreakScanLimit days.
func Streak(entries []models.CheckIn, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, entry := range entries {
		days[entry.Date] = true
	}

	streak := 0
	current := today
	for i := 0; i < constants.StreakScanLimit; i++ {
		if !days[current.Format("2006-01-02")] {
			break
		}
		streak++
		current = current.AddDate(0, 0, -1)
	}

	return streak
}
