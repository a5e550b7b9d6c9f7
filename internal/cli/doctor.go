package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/vitalflow/internal/backup"
	"github.com/julianstephens/vitalflow/internal/constants"
	"github.com/julianstephens/vitalflow/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		fmt.Println()
		fmt.Println("Cannot continue without storage. Run 'vitalflow init' first.")
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Printf("✓ Storage reachable: OK\n")

	// Check 2: check-in collection parses
	if err := ctx.Repo.CheckCollection(); err != nil {
		fmt.Printf("❌ Check-in data: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		fmt.Printf("   The app will treat the collection as empty; restore a backup to recover entries.\n")
		hasError = true
	} else {
		fmt.Printf("✓ Check-in data: OK\n")
	}

	// Check 3: profile present
	if _, ok, err := ctx.Repo.Profile(); err != nil {
		fmt.Printf("❌ Profile: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else if !ok {
		fmt.Printf("⚠ Profile: WARNING\n")
		fmt.Printf("   No profile found; run 'vitalflow init' to onboard.\n")
	} else {
		fmt.Printf("✓ Profile: OK\n")
	}

	// Check 4: API key configured (warning only; insights are optional)
	if _, err := keyring.GetAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Printf("⚠ Gemini API key: WARNING\n")
			fmt.Printf("   Not configured; AI insights are disabled.\n")
		} else {
			fmt.Printf("⚠ Gemini API key: WARNING\n")
			fmt.Printf("   %v\n", err)
		}
	} else {
		fmt.Printf("✓ Gemini API key: OK\n")
	}

	// Check 5: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.List(); err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found; run 'vitalflow backup create'.\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 6: single local writer. The journal file assumes one process
	// mutates it; another running vitalflow can lose updates.
	if others, err := findOtherInstances(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   Could not inspect process list: %v\n", err)
	} else if len(others) > 0 {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %d other vitalflow process(es) running (pids %v); concurrent writes can be lost.\n", len(others), others)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics found problems.")
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Println("All diagnostics passed.")
	return nil
}

func findOtherInstances() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	var pids []int
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), filepath.Ext(p.Executable()))
		if name == constants.AppName {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
