package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/julianstephens/vitalflow/internal/insight"
	"github.com/julianstephens/vitalflow/internal/keyring"
)

func TestReasonOfMissingKey(t *testing.T) {
	got := reasonOf(keyring.ErrNotFound)
	if !strings.Contains(got, "vitalflow config set-api-key") {
		t.Errorf("reasonOf = %q, want a setup hint", got)
	}
}

func TestReasonOfStripsFailureWrapper(t *testing.T) {
	err := fmt.Errorf("%w: %v", insight.ErrRequestFailed, errors.New("timeout"))
	if got := reasonOf(err); got != "timeout" {
		t.Errorf("reasonOf = %q, want timeout", got)
	}
}

func TestReasonOfPassesThroughOtherErrors(t *testing.T) {
	if got := reasonOf(errors.New("disk full")); got != "disk full" {
		t.Errorf("reasonOf = %q, want disk full", got)
	}
}

func TestInsightFailureNoticeCarriesFallback(t *testing.T) {
	err := fmt.Errorf("%w: %v", insight.ErrRequestFailed, errors.New("rate limited"))
	notice := insightFailureNotice(err)
	if !strings.Contains(notice, "rate limited") {
		t.Errorf("notice %q missing the failure reason", notice)
	}
	if !strings.Contains(notice, insight.FallbackEntry) {
		t.Errorf("notice %q missing the entry fallback text", notice)
	}
}
