package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

// OllamaClient is the slice of the Ollama API used by the native strategy.
// Tests substitute a mock.
type OllamaClient interface {
	Generate(ctx context.Context, req *ollama.GenerateRequest, fn ollama.GenerateResponseFunc) error
}

// OllamaNativeStrategy talks to an Ollama server through its own API instead
// of the OpenAI-compatible /v1 endpoint. The system prompt travels in the
// request's System field and the content is a single prompt.
type OllamaNativeStrategy struct{}

func (OllamaNativeStrategy) NewClient(_ context.Context, p *Provider) (Client, error) {
	if p.BaseURL == "" {
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("create client: %w", err)
		}

		return client, nil
	}

	// The binding carries the OpenAI-compatible endpoint; the native API
	// lives at the server root.
	base, err := url.Parse(strings.TrimSuffix(p.BaseURL, "/v1"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	return ollama.NewClient(base, &http.Client{}), nil
}

func (OllamaNativeStrategy) Summarize(
	ctx context.Context,
	p *Provider,
	client Client,
	content string,
	prompts Prompts,
) (string, error) {
	c, ok := client.(OllamaClient)
	if !ok {
		return "", fmt.Errorf("unexpected client type %T", client)
	}

	stream := false
	req := &ollama.GenerateRequest{
		Model:  p.Model,
		System: prompts.System,
		Prompt: prompts.UserPrefix + content,
		Stream: &stream,
	}

	var summary strings.Builder
	err := c.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		summary.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	return summary.String(), nil
}
