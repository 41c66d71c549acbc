package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"mentor-backend/internal/llm"
)

// Client implements llm.Client against the Gemini API.
type Client struct {
	client       *genai.Client
	defaultModel string
}

// NewClient constructs a Gemini client. The API key is mandatory; no endpoint
// can function without it, so construction failure aborts startup.
func NewClient(ctx context.Context, apiKey, defaultModel string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if defaultModel = strings.TrimSpace(defaultModel); defaultModel == "" {
		defaultModel = "gemini-2.5-flash"
	}

	return &Client{client: client, defaultModel: defaultModel}, nil
}

// GenerateText sends the prompt to Gemini and returns the concatenated textual
// candidate output. Provider failures are returned as-is; the boundary does
// not compensate for provider instability.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	if model = strings.TrimSpace(model); model == "" {
		model = c.defaultModel
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

// ListModels enumerates the models the Gemini API currently exposes.
func (c *Client) ListModels(ctx context.Context) ([]llm.ModelInfo, error) {
	var models []llm.ModelInfo
	for m, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		if m == nil {
			continue
		}
		models = append(models, llm.ModelInfo{
			Name:        m.Name,
			DisplayName: m.DisplayName,
			Description: m.Description,
			Version:     m.Version,
		})
	}
	return models, nil
}

var _ llm.Client = (*Client)(nil)
