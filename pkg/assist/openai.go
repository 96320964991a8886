package assist

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"structor/pkg/config"
)

// OpenAIClient implements Client over the official OpenAI Go SDK using the
// Responses API.
type OpenAIClient struct {
	client    openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient creates an OpenAI-backed assist client.
func NewOpenAIClient(cfg config.AssistConfig) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

func (c *OpenAIClient) Name() string { return config.ProviderOpenAI }

// Complete folds the system prompt into the input text, which is how the
// Responses API consumes single-turn instructions.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	input := user
	if system != "" {
		input = fmt.Sprintf("System: %s\n\n%s", system, user)
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(int64(c.maxTokens)),
		Input:           responses.ResponseNewParamsInputUnion{OfString: openai.String(input)},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}

	text := resp.OutputText()
	if text == "" {
		return "", fmt.Errorf("openai returned an empty response")
	}
	return text, nil
}
