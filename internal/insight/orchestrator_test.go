package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/vitalflow/internal/models"
)

// mockGenerator records the prompt it was given and returns canned results.
type mockGenerator struct {
	prompt string
	text   string
	err    error
}

func (m *mockGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.text, m.err
}

func TestEntryInsightSuccessReturnsTextVerbatim(t *testing.T) {
	gen := &mockGenerator{text: "  You had a great day!  "}
	o := NewOrchestrator(gen)

	text, err := o.EntryInsight(context.Background(), 8, "went for a long walk", "Build healthy habits", []int{7, 6})
	require.NoError(t, err)
	assert.Equal(t, "  You had a great day!  ", text, "generated text is returned untouched")
}

func TestEntryInsightPromptContents(t *testing.T) {
	gen := &mockGenerator{text: "ok"}
	o := NewOrchestrator(gen)

	_, err := o.EntryInsight(context.Background(), 8, "went for a long walk", "Build healthy habits", []int{7, 6, 9})
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "8/10")
	assert.Contains(t, gen.prompt, "went for a long walk")
	assert.Contains(t, gen.prompt, "Build healthy habits")
	assert.Contains(t, gen.prompt, "7, 6, 9")
}

func TestEntryInsightOmitsEmptyRecentMoods(t *testing.T) {
	gen := &mockGenerator{text: "ok"}
	o := NewOrchestrator(gen)

	_, err := o.EntryInsight(context.Background(), 5, "first entry", "Better sleep quality", nil)
	require.NoError(t, err)
	assert.NotContains(t, gen.prompt, "Recent mood scores")
}

func TestEntryInsightEmptyJournalRejectedBeforeCall(t *testing.T) {
	gen := &mockGenerator{text: "should not be returned"}
	o := NewOrchestrator(gen)

	_, err := o.EntryInsight(context.Background(), 5, "   ", "goal", nil)
	assert.ErrorIs(t, err, ErrEmptyJournal)
	assert.Empty(t, gen.prompt, "no generation call for an empty journal")
}

func TestEntryInsightFailureCarriesReason(t *testing.T) {
	gen := &mockGenerator{err: errors.New("timeout")}
	o := NewOrchestrator(gen)

	text, err := o.EntryInsight(context.Background(), 5, "tired today", "goal", nil)
	assert.Empty(t, text, "no text is fabricated on failure")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "timeout")
}

func TestEntryInsightUniformFailureShape(t *testing.T) {
	// Transport errors, blocked responses, and malformed responses all
	// surface as ErrRequestFailed.
	for _, cause := range []error{
		errors.New("connection refused"),
		ErrBlocked,
		ErrInvalidResponse,
	} {
		gen := &mockGenerator{err: cause}
		o := NewOrchestrator(gen)

		_, err := o.EntryInsight(context.Background(), 5, "hello", "goal", nil)
		assert.ErrorIs(t, err, ErrRequestFailed, "cause %v", cause)
	}
}

func TestAnalyzePatternsPromptContents(t *testing.T) {
	gen := &mockGenerator{text: "analysis"}
	o := NewOrchestrator(gen)

	entries := []models.CheckIn{
		{Date: "2025-06-15", Mood: 8, Journal: "productive day"},
		{Date: "2025-06-14", Mood: 3, Journal: "rough night"},
	}
	text, err := o.AnalyzePatterns(context.Background(), entries, "Ada")
	require.NoError(t, err)
	assert.Equal(t, "analysis", text)

	assert.Contains(t, gen.prompt, "Ada")
	assert.Contains(t, gen.prompt, "2025-06-15")
	assert.Contains(t, gen.prompt, "productive day")
	assert.Contains(t, gen.prompt, "rough night")
}

func TestAnalyzePatternsDefaultsName(t *testing.T) {
	gen := &mockGenerator{text: "analysis"}
	o := NewOrchestrator(gen)

	_, err := o.AnalyzePatterns(context.Background(), []models.CheckIn{{Date: "2025-06-15", Mood: 5, Journal: "x"}}, "")
	require.NoError(t, err)
	assert.Contains(t, gen.prompt, models.DefaultName)
}

func TestAnalyzePatternsFailure(t *testing.T) {
	gen := &mockGenerator{err: errors.New("rate limited")}
	o := NewOrchestrator(gen)

	text, err := o.AnalyzePatterns(context.Background(), []models.CheckIn{{Date: "2025-06-15", Mood: 5, Journal: "x"}}, "Ada")
	assert.Empty(t, text)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestFallbacksAreStable(t *testing.T) {
	// UI layers key on these exact strings; a reworded fallback is a
	// behavior change, not a copy edit.
	assert.True(t, strings.HasPrefix(FallbackWelcome, "Welcome to your wellness journey!"))
	assert.Equal(t, "Your wellness journey is unique. Keep tracking your mood to unlock personalized AI insights!", FallbackPattern)
	assert.Equal(t, "Keep tracking your daily mood to get personalized recommendations.", FallbackEntry)
}
