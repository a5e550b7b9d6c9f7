package analytics

import (
	"time"

	"github.com/julianstephens/vitalflow/internal/constants"
	"github.com/julianstephens/vitalflow/internal/models"
)

// TrendPoint is one bar in the mood trend chart.
type TrendPoint struct {
	Label  string // short date label, e.g. "Jan 2"
	Mood   int
	Height int // mood/10 of maxHeight, floored
}

// TrendSeries takes the most recent TrendDays entries (the input is most
// recent first), reverses them to chronological order, and scales each mood
// against maxHeight.
func TrendSeries(entries []models.CheckIn, maxHeight int) []TrendPoint {
	n := len(entries)
	if n > constants.TrendDays {
		n = constants.TrendDays
	}

	points := make([]TrendPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		entry := entries[i]
		points = append(points, TrendPoint{
			Label:  ShortDate(entry.Date),
			Mood:   entry.Mood,
			Height: entry.Mood * maxHeight / constants.MoodMax,
		})
	}

	return points
}

// ShortDate renders a YYYY-MM-DD date as "Jan 2". Unparsable dates pass
// through untouched rather than failing a render.
func ShortDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

// FullDate renders a YYYY-MM-DD date as "Mon, Jan 2, 2006".
func FullDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2, 2006")
}

// RelativeDate renders "Today" or "Yesterday" against the reference day and
// falls back to the short form otherwise.
func RelativeDate(date string, today time.Time) string {
	switch date {
	case today.Format("2006-01-02"):
		return "Today"
	case today.AddDate(0, 0, -1).Format("2006-01-02"):
		return "Yesterday"
	default:
		return ShortDate(date)
	}
}

// RecentMoods returns up to limit mood scores from the most-recent-first
// entry list, newest first, for insight-prompt context.
func RecentMoods(entries []models.CheckIn, limit int) []int {
	if limit > len(entries) {
		limit = len(entries)
	}
	moods := make([]int, 0, limit)
	for _, entry := range entries[:limit] {
		moods = append(moods, entry.Mood)
	}
	return moods
}
