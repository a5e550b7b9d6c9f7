package journal

import "time"

// Clock supplies "now" so streaks and today-lookups can be pinned in tests
// instead of reading the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

// DateOf formats t as the local calendar day in YYYY-MM-DD form.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
