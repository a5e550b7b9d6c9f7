package insight

import "context"

// Generator is the boundary between the orchestrator and the external AI
// text-generation capability. Implementations make exactly one round trip
// per call; retrying is the caller's decision, never automatic.
type Generator interface {
	// GenerateText sends the prompt and returns the generated text verbatim.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
