package analytics

// Band is one of four fixed mood ranges, each tied to a display color used
// for chart bars and badges.
type Band string

const (
	BandLow     Band = "low"      // 1-3
	BandMidLow  Band = "mid-low"  // 4-5
	BandMidHigh Band = "mid-high" // 6-7
	BandHigh    Band = "high"     // 8-10
)

// BandOf maps a mood score to its band.
func BandOf(mood int) Band {
	switch {
	case mood <= 3:
		return BandLow
	case mood <= 5:
		return BandMidLow
	case mood <= 7:
		return BandMidHigh
	default:
		return BandHigh
	}
}

// Color returns the band's fixed display color as a hex string.
func (b Band) Color() string {
	switch b {
	case BandLow:
		return "#ff6b6b"
	case BandMidLow:
		return "#ffd93d"
	case BandMidHigh:
		return "#6bcf7f"
	default:
		return "#4ecdc4"
	}
}

// MoodColor is shorthand for BandOf(mood).Color().
func MoodColor(mood int) string {
	return BandOf(mood).Color()
}
