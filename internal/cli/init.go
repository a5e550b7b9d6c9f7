package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/vitalflow/internal/models"
	"github.com/julianstephens/vitalflow/internal/storage"
)

const customGoalOption = "Something else…"

type InitCmd struct {
	Name string `help:"Your name (skips the interactive form when --age and --goal are also set)."`
	Age  int    `help:"Your age."`
	Goal string `help:"Your wellness goal."`
}

func (c *InitCmd) Run(ctx *Context) error {
	// After 'vitalflow reset' the store file still exists but holds no
	// profile; onboarding continues on top of it rather than failing.
	if err := ctx.Store.Init(); err != nil {
		if !errors.Is(err, storage.ErrAlreadyInitialized) {
			return err
		}
		if err := ctx.Store.Load(); err != nil {
			return err
		}
		if _, ok, err := ctx.Repo.Profile(); err != nil {
			return err
		} else if ok {
			return fmt.Errorf("a profile already exists; run 'vitalflow reset' to start over")
		}
	}

	profile := models.UserProfile{
		Name:      strings.TrimSpace(c.Name),
		Age:       c.Age,
		Goal:      strings.TrimSpace(c.Goal),
		CreatedAt: ctx.Clock.Now(),
	}

	if profile.Name == "" || profile.Age == 0 || profile.Goal == "" {
		var err error
		profile, err = runOnboardingForm(profile)
		if err != nil {
			return err
		}
		profile.CreatedAt = ctx.Clock.Now()
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Repo.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s! 💙\n", profile.Name)
	fmt.Printf("Goal: %s\n", profile.Goal)
	fmt.Printf("Storage initialized at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("\nRecord your first check-in with 'vitalflow checkin'.")
	return nil
}

func runOnboardingForm(seed models.UserProfile) (models.UserProfile, error) {
	name := seed.Name
	ageStr := ""
	if seed.Age > 0 {
		ageStr = strconv.Itoa(seed.Age)
	}
	goal := seed.Goal
	customGoal := ""

	options := make([]huh.Option[string], 0, len(models.WellnessGoals)+1)
	for _, g := range models.WellnessGoals {
		options = append(options, huh.NewOption(g, g))
	}
	options = append(options, huh.NewOption(customGoalOption, customGoalOption))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please enter your name")
					}
					return nil
				}),
			huh.NewInput().
				Title("How old are you?").
				Value(&ageStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 || n > 120 {
						return errors.New("please enter a valid age")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("What brings you to vitalflow?").
				Options(options...).
				Value(&goal),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Describe your wellness goal").
				Value(&customGoal).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please describe your goal")
					}
					return nil
				}),
		).WithHideFunc(func() bool {
			return goal != customGoalOption
		}),
	)

	if err := form.Run(); err != nil {
		return models.UserProfile{}, err
	}

	if goal == customGoalOption {
		goal = strings.TrimSpace(customGoal)
	}
	age, _ := strconv.Atoi(strings.TrimSpace(ageStr))

	return models.UserProfile{
		Name: strings.TrimSpace(name),
		Age:  age,
		Goal: goal,
	}, nil
}
