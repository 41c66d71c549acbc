package chat

import (
	"context"

	"mentor-backend/internal/llm"
)

// Service orchestrates chat-mode generation.
type Service struct {
	LLM          llm.Client
	DefaultModel string
}

// Result carries the outcome of one chat generation.
type Result struct {
	Model  string
	Prompt string
	Text   string
}

// Generate builds the chat prompt and invokes the model. Provider errors are
// returned as-is for the handler to surface as internal errors.
func (s *Service) Generate(ctx context.Context, userPrompt, model string, opts Options) (Result, error) {
	if model == "" {
		model = s.DefaultModel
	}

	prompt := BuildPrompt(userPrompt, opts)
	text, err := s.LLM.GenerateText(ctx, model, prompt)
	if err != nil {
		return Result{}, err
	}

	return Result{Model: model, Prompt: prompt, Text: text}, nil
}
