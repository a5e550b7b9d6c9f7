package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/vitalflow/internal/constants"
)

var (
	// ErrMoodRange is returned when a check-in's mood falls outside [MoodMin, MoodMax].
	ErrMoodRange = errors.New("mood must be between 1 and 10")
	// ErrEmptyJournal is returned when a check-in's journal text is empty or whitespace.
	ErrEmptyJournal = errors.New("journal entry cannot be empty")
	// ErrJournalTooLong is returned when the journal text exceeds MaxJournalLen runes.
	ErrJournalTooLong = fmt.Errorf("journal entry cannot exceed %d characters", constants.MaxJournalLen)
	// ErrBadDate is returned when a check-in's date is not a valid YYYY-MM-DD string.
	ErrBadDate = errors.New("date must be in YYYY-MM-DD format")
)

// CheckIn is one dated record of mood score, journal text, and optional AI insight.
// Date is the natural key: the repository holds at most one check-in per day.
type CheckIn struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD format
	Mood      int    `json:"mood"` // 1..10 inclusive
	Journal   string `json:"journal"`
	AIInsight string `json:"aiInsight,omitempty"`
	Timestamp int64  `json:"timestamp"` // creation instant, milliseconds since epoch
}

// Validate checks the check-in invariants that must hold before any write:
// mood in range, non-blank journal within the length cap, well-formed date.
func (c CheckIn) Validate() error {
	if c.Mood < constants.MoodMin || c.Mood > constants.MoodMax {
		return fmt.Errorf("%w (got %d)", ErrMoodRange, c.Mood)
	}
	if strings.TrimSpace(c.Journal) == "" {
		return ErrEmptyJournal
	}
	if utf8.RuneCountInString(c.Journal) > constants.MaxJournalLen {
		return ErrJournalTooLong
	}
	if !ValidDate(c.Date) {
		return fmt.Errorf("%w (got %q)", ErrBadDate, c.Date)
	}
	return nil
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}
