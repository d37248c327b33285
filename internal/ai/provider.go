package ai

import "context"

// Provider is a minimal text-completion interface. The oracle layer
// builds prompts; providers only move them over the wire.
type Provider interface {
	Complete(ctx context.Context, model string, prompt string) (string, error)
}
