package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/vitalflow/internal/models"
)

type DeleteCmd struct {
	Target string `arg:"" help:"Date (YYYY-MM-DD or 'today') or entry id to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id := c.Target
	label := c.Target

	// Dates are friendlier than opaque ids; resolve them first.
	date := c.Target
	if date == "today" {
		date = ctx.Clock.Now().Format("2006-01-02")
	}
	if models.ValidDate(date) {
		entry, ok, err := ctx.Repo.ByDate(date)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No entry found for %s.\n", date)
			return nil
		}
		id = entry.ID
		label = date
	}

	removed, err := ctx.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("No entry found for %s.\n", label)
		return nil
	}

	fmt.Printf("Deleted check-in: %s\n", label)
	return nil
}

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  This will clear the current profile and every check-in so a new user can start fresh.")
		fmt.Println("A backup of your current data will be created first.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Repo.ClearAll(); err != nil {
		return err
	}

	fmt.Println("✓ All data cleared.")
	fmt.Println("Run 'vitalflow init' to set up a new profile.")
	return nil
}
