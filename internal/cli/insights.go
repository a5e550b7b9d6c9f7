package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/vitalflow/internal/insight"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, _, err := ctx.Repo.Profile()
	if err != nil {
		return err
	}
	profile = profile.WithDefaults()

	entries, err := ctx.Repo.All()
	if err != nil {
		return err
	}

	fmt.Printf("Your Wellness Journey\n")
	fmt.Printf("%s, here's what your data tells us\n\n", profile.Name)

	// An empty history gets the canned welcome rather than an API call.
	if len(entries) == 0 {
		fmt.Println("🤖 " + insight.FallbackWelcome)
		return nil
	}

	orch, err := ctx.newOrchestrator(context.Background())
	if err != nil {
		fmt.Printf("⚠ %s\n\n", reasonOf(err))
		fmt.Println("🤖 " + insight.FallbackPattern)
		return nil
	}

	fmt.Println("Analyzing your wellness patterns...")
	text, err := orch.AnalyzePatterns(context.Background(), entries, profile.Name)
	if err != nil {
		fmt.Printf("⚠ %s\n\n", reasonOf(err))
		fmt.Println("🤖 " + insight.FallbackPattern)
		return nil
	}

	fmt.Println("\n🤖 " + text)
	return nil
}
