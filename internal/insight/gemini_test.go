package insight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The Gemini adapter must satisfy the Generator boundary.
var _ Generator = (*GeminiGenerator)(nil)

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewGeminiGeneratorDefaultsModel(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), "test-key", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, gen.model)
}

func TestNewGeminiGeneratorKeepsModel(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), "test-key", "gemini-1.5-pro")
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", gen.model)
}
