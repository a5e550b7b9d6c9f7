package constants

const (
	// AppName is used for the keyring service and user-facing output.
	AppName = "vitalflow"

	// DefaultKeyringUser is the account name under which the Gemini API
	// key is stored in the OS keyring.
	DefaultKeyringUser = "gemini-api-key"

	// Journal entry limits:
	// - MoodMin/MoodMax bound the mood score a check-in may carry.
	// - MaxJournalLen caps the free-text journal entry (matches the
	//   on-screen 500-char counter).
	MoodMin       = 1
	MoodMax       = 10
	MaxJournalLen = 500

	// TrendDays is the number of entries shown in the mood trend chart.
	TrendDays = 7
	// RecentMoodWindow is how many prior mood scores are sent along with
	// an entry-insight request for context.
	RecentMoodWindow = 7
	// StreakScanLimit caps the backward day walk when counting a streak.
	StreakScanLimit = 365
)
