package insight

import (
	"context"
	"fmt"

	"github.com/julianstephens/vitalflow/internal/logger"
	"github.com/julianstephens/vitalflow/internal/models"
)

// Deterministic fallback texts. The orchestrator never substitutes these
// itself; the CLI and TUI layers choose them when a request fails or there is
// nothing to analyze yet.
const (
	// FallbackWelcome greets a user with no check-ins on the insights screen.
	FallbackWelcome = "Welcome to your wellness journey! Start by completing your first daily check-in. Regular tracking helps identify patterns in your mood and provides personalized recommendations. Take a moment each day to reflect on how you're feeling."

	// FallbackPattern covers a failed cross-entry analysis.
	FallbackPattern = "Your wellness journey is unique. Keep tracking your mood to unlock personalized AI insights!"

	// FallbackEntry covers a failed single-entry insight.
	FallbackEntry = "Keep tracking your daily mood to get personalized recommendations."
)

// Orchestrator builds prompts, makes one generation call per request, and
// maps every failure shape to a uniform typed error. It never writes to
// storage; attaching a generated insight to a check-in is the caller's job.
type Orchestrator struct {
	gen Generator
}

func NewOrchestrator(gen Generator) *Orchestrator {
	return &Orchestrator{gen: gen}
}

// EntryInsight generates a wellness insight for a single check-in. On success
// the generated text is returned verbatim; on failure the error carries a
// human-readable reason and no text is fabricated.
func (o *Orchestrator) EntryInsight(ctx context.Context, mood int, journalText, goal string, recentMoods []int) (string, error) {
	prompt, err := BuildEntryPrompt(mood, journalText, goal, recentMoods)
	if err != nil {
		return "", err
	}

	logger.Debug("requesting entry insight", "mood", mood, "recent_moods", len(recentMoods))

	text, err := o.gen.GenerateText(ctx, prompt)
	if err != nil {
		logger.Warn("entry insight request failed", "err", err)
		return "", wrapFailure(err)
	}

	return text, nil
}

// AnalyzePatterns generates a cross-entry mood analysis. Callers substitute
// FallbackWelcome for an empty history instead of invoking this at all.
func (o *Orchestrator) AnalyzePatterns(ctx context.Context, entries []models.CheckIn, userName string) (string, error) {
	prompt, err := BuildPatternPrompt(entries, userName)
	if err != nil {
		return "", err
	}

	logger.Debug("requesting pattern analysis", "entries", len(entries))

	text, err := o.gen.GenerateText(ctx, prompt)
	if err != nil {
		logger.Warn("pattern analysis request failed", "err", err)
		return "", wrapFailure(err)
	}

	return text, nil
}

// wrapFailure folds transport errors, non-success responses, and malformed
// responses into the single failed-with-reason shape the callers handle.
func wrapFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrRequestFailed, err)
}
