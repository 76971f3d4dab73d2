// Package provider talks to the external text-generation service.
package provider

import (
	"context"
)

// Generator completes a single prompt into free-form text.
type Generator interface {
	// Name returns the provider name (e.g., "openai")
	Name() string

	// Generate sends prompt as one request and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)
}
