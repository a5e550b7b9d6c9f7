package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/vitalflow/internal/backup"
	"github.com/julianstephens/vitalflow/internal/insight"
	"github.com/julianstephens/vitalflow/internal/journal"
	"github.com/julianstephens/vitalflow/internal/keyring"
	"github.com/julianstephens/vitalflow/internal/storage"
)

type Context struct {
	Store storage.Store
	Repo  *journal.Repository
	Clock journal.Clock
	Model string
}

// moodEmojis indexes by mood-1, mirroring the check-in screen's scale.
var moodEmojis = []string{"😢", "😟", "😕", "😐", "🙂", "😊", "😄", "😃", "😁", "🤩"}

func moodEmoji(mood int) string {
	if mood < 1 || mood > len(moodEmojis) {
		return "❓"
	}
	return moodEmojis[mood-1]
}

// newOrchestrator resolves the API key and builds a Gemini-backed insight
// orchestrator. Callers translate keyring.ErrNotFound into a hint to run
// 'vitalflow config set-api-key'.
func (ctx *Context) newOrchestrator(c context.Context) (*insight.Orchestrator, error) {
	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		return nil, err
	}

	gen, err := insight.NewGeminiGenerator(c, apiKey, ctx.Model)
	if err != nil {
		return nil, err
	}

	return insight.NewOrchestrator(gen), nil
}

// PerformAutomaticBackup makes a best-effort backup of the store file. Never
// fails the calling command.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		fmt.Printf("Warning: automatic backup failed: %v\n", err)
	}
}
