package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/vitalflow/internal/analytics"
	"github.com/julianstephens/vitalflow/internal/constants"
	"github.com/julianstephens/vitalflow/internal/insight"
	"github.com/julianstephens/vitalflow/internal/journal"
	"github.com/julianstephens/vitalflow/internal/keyring"
	"github.com/julianstephens/vitalflow/internal/models"
)

type CheckinCmd struct {
	Mood    int    `help:"Mood score 1-10 (skips the interactive form when --journal is also set)."`
	Journal string `help:"Journal entry text."`
	Insight bool   `help:"Generate an AI wellness insight and attach it to the entry."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// One check-in per day: once today's entry exists it is read-only.
	if existing, ok, err := ctx.Repo.Today(); err != nil {
		return err
	} else if ok {
		fmt.Println("✓ You've already checked in today.")
		printEntry(existing, ctx.Clock)
		return nil
	}

	mood := c.Mood
	journalText := strings.TrimSpace(c.Journal)
	wantInsight := c.Insight

	if mood == 0 || journalText == "" {
		var err error
		mood, journalText, wantInsight, err = runCheckinForm(mood, journalText)
		if err != nil {
			return err
		}
	}

	entry := models.CheckIn{
		Date:    journal.DateOf(ctx.Clock.Now()),
		Mood:    mood,
		Journal: journalText,
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	// Insight first, then save, so a brand-new entry already carries its
	// insight. A generation failure never blocks the save.
	if wantInsight {
		text, err := c.generateInsight(ctx, entry)
		if err != nil {
			fmt.Print(insightFailureNotice(err))
		} else {
			entry.AIInsight = text
		}
	}

	if err := ctx.Repo.Save(entry); err != nil {
		return err
	}

	fmt.Printf("✓ Check-in saved for %s 🎉\n", entry.Date)
	fmt.Printf("  Mood: %s %d/10\n", moodEmoji(entry.Mood), entry.Mood)
	if entry.AIInsight != "" {
		fmt.Printf("\n💡 %s\n", entry.AIInsight)
	}
	return nil
}

// generateInsight runs the read → generate pipeline: recent moods and the
// profile goal feed the prompt. The caller attaches the result via Save.
func (c *CheckinCmd) generateInsight(ctx *Context, entry models.CheckIn) (string, error) {
	orch, err := ctx.newOrchestrator(context.Background())
	if err != nil {
		return "", err
	}

	entries, err := ctx.Repo.All()
	if err != nil {
		return "", err
	}
	recent := analytics.RecentMoods(entries, constants.RecentMoodWindow)

	goal := models.DefaultGoal
	if profile, ok, err := ctx.Repo.Profile(); err == nil && ok {
		goal = profile.Goal
	}

	fmt.Println("✨ Generating insight...")
	return orch.EntryInsight(context.Background(), entry.Mood, entry.Journal, goal, recent)
}

func runCheckinForm(mood int, journalText string) (int, string, bool, error) {
	if mood == 0 {
		mood = 5
	}
	moodStr := strconv.Itoa(mood)
	wantInsight := true

	moodOptions := make([]huh.Option[string], 0, constants.MoodMax)
	for v := constants.MoodMin; v <= constants.MoodMax; v++ {
		label := fmt.Sprintf("%s %d", moodEmoji(v), v)
		moodOptions = append(moodOptions, huh.NewOption(label, strconv.Itoa(v)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Description("1 = not well, 10 = excellent").
				Options(moodOptions...).
				Value(&moodStr),
			huh.NewText().
				Title("What's on your mind?").
				Placeholder("Share your thoughts, what happened today, what you're grateful for...").
				CharLimit(constants.MaxJournalLen).
				Value(&journalText).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please write something in your journal entry")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Get an AI wellness insight?").
				Value(&wantInsight),
		),
	)

	if err := form.Run(); err != nil {
		return 0, "", false, err
	}

	m, err := strconv.Atoi(moodStr)
	if err != nil {
		return 0, "", false, fmt.Errorf("invalid mood: %w", err)
	}
	return m, strings.TrimSpace(journalText), wantInsight, nil
}

// printEntry renders one check-in with its band color and insight.
func printEntry(entry models.CheckIn, clock journal.Clock) {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(analytics.MoodColor(entry.Mood))).
		Bold(true)

	fmt.Printf("\n%s  %s %s\n",
		analytics.RelativeDate(entry.Date, clock.Now()),
		badge.Render(fmt.Sprintf("%d/10", entry.Mood)),
		moodEmoji(entry.Mood))
	fmt.Printf("  %s\n", entry.Journal)
	if entry.AIInsight != "" {
		fmt.Printf("  💡 %s\n", entry.AIInsight)
	}
}

// insightFailureNotice renders a failed insight request: the actionable
// reason plus the canned entry fallback. The check-in itself still saves.
func insightFailureNotice(err error) string {
	return fmt.Sprintf("⚠ Could not generate insight: %s\n  💡 %s\n", reasonOf(err), insight.FallbackEntry)
}

// reasonOf strips the uniform failure wrapper down to the part a user can act
// on, and turns a missing API key into a setup hint.
func reasonOf(err error) string {
	if errors.Is(err, keyring.ErrNotFound) {
		return "no API key configured, run 'vitalflow config set-api-key'"
	}
	if errors.Is(err, insight.ErrRequestFailed) {
		return strings.TrimPrefix(err.Error(), insight.ErrRequestFailed.Error()+": ")
	}
	return err.Error()
}
