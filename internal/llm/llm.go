package llm

import (
	"context"
	"errors"
)

// Client abstracts the generative model provider.
type Client interface {
	// GenerateText sends the prompt to the given model and returns the raw
	// text completion. It blocks for the full provider round trip; callers do
	// not retry and do not layer an extra timeout on top.
	GenerateText(ctx context.Context, model, prompt string) (string, error)

	// ListModels returns the models the provider currently exposes.
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// ModelInfo describes one provider model.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client is not configured")

// PlaceholderClient is a stub implementation for tests and partial wiring.
type PlaceholderClient struct{}

func (PlaceholderClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	_ = ctx
	_ = model
	_ = prompt
	return "", ErrNotConfigured
}

func (PlaceholderClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	_ = ctx
	return nil, ErrNotConfigured
}
