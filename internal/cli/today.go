package cli

import (
	"fmt"

	"github.com/julianstephens/vitalflow/internal/analytics"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, _, err := ctx.Repo.Profile()
	if err != nil {
		return err
	}
	if profile.Name == "" {
		profile = profile.WithDefaults()
	}

	entries, err := ctx.Repo.All()
	if err != nil {
		return err
	}

	summary := analytics.Summarize(entries)
	streak := analytics.Streak(entries, ctx.Clock.Now())

	fmt.Printf("Hello, %s! ❤️\n", profile.Name)
	fmt.Printf("Goal: %s\n\n", profile.Goal)
	fmt.Printf("  %d day streak  ·  %d check-ins  ·  %.1f avg mood\n\n", streak, summary.Total, summary.Average)

	entry, ok, err := ctx.Repo.Today()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No check-in yet today.")
		fmt.Println("Take a moment to reflect with 'vitalflow checkin'.")
		return nil
	}

	fmt.Println("Today's mood:")
	printEntry(entry, ctx.Clock)
	return nil
}
