package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIChatStrategy talks to any backend that speaks the OpenAI chat
// completions wire format: OpenAI itself, an Ollama server's /v1 endpoint,
// or Gemini's OpenAI-compatible endpoint. Only the provider's API key, base
// URL and model vary.
type OpenAIChatStrategy struct{}

func (OpenAIChatStrategy) NewClient(_ context.Context, p *Provider) (Client, error) {
	opts := []option.RequestOption{option.WithAPIKey(p.APIKey)}
	if p.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(p.BaseURL))
	}

	return openai.NewClient(opts...), nil
}

func (OpenAIChatStrategy) Summarize(
	ctx context.Context,
	p *Provider,
	client Client,
	content string,
	prompts Prompts,
) (string, error) {
	c, ok := client.(openai.Client)
	if !ok {
		return "", fmt.Errorf("unexpected client type %T", client)
	}

	resp, err := c.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompts.System),
			openai.UserMessage(prompts.UserPrefix + content),
		},
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
