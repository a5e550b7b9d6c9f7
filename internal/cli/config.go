package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/vitalflow/internal/keyring"
)

type ConfigCmd struct {
	SetAPIKey    ConfigSetAPIKeyCmd    `cmd:"" name:"set-api-key" help:"Store the Gemini API key in the OS keyring."`
	ShowAPIKey   ConfigShowAPIKeyCmd   `cmd:"" name:"show-api-key" help:"Show whether an API key is configured."`
	DeleteAPIKey ConfigDeleteAPIKeyCmd `cmd:"" name:"delete-api-key" help:"Remove the API key from the OS keyring."`
}

type ConfigSetAPIKeyCmd struct {
	Key string `arg:"" help:"Gemini API key."`
}

func (c *ConfigSetAPIKeyCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(strings.TrimSpace(c.Key)); err != nil {
		return err
	}
	fmt.Println("✓ API key stored in OS keyring.")
	return nil
}

type ConfigShowAPIKeyCmd struct{}

func (c *ConfigShowAPIKeyCmd) Run(ctx *Context) error {
	key, err := keyring.GetAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API key configured.")
			fmt.Printf("Set one with 'vitalflow config set-api-key' or the %s environment variable.\n", keyring.EnvAPIKey)
			return nil
		}
		return err
	}

	// Never print the key itself.
	masked := "****"
	if len(key) > 4 {
		masked = strings.Repeat("*", len(key)-4) + key[len(key)-4:]
	}
	fmt.Printf("API key configured: %s\n", masked)
	return nil
}

type ConfigDeleteAPIKeyCmd struct{}

func (c *ConfigDeleteAPIKeyCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No API key was stored.")
			return nil
		}
		return err
	}
	fmt.Println("✓ API key removed from OS keyring.")
	return nil
}
