package insight

import "errors"

// Common errors returned by the insight package. Callers pair any of these
// with their own deterministic fallback text; no insight text is fabricated
// on a failure path.
var (
	// ErrRequestFailed is returned when the text-generation call fails for any
	// general reason (transport error, non-success response).
	ErrRequestFailed = errors.New("insight request failed")

	// ErrInvalidResponse is returned when the model response is empty or malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrBlocked is returned when the model blocks the content via safety filters.
	ErrBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyJournal is returned when an entry insight is requested without
	// journal text. Callers enforce this before building a request; the check
	// here is the last line of defense.
	ErrEmptyJournal = errors.New("journal text cannot be empty")
)
