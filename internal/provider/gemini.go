package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiNativeStrategy talks to Gemini through Google's own SDK. Unlike the
// chat completions format, the system prompt travels in a dedicated
// system-instruction field and the content is a single user message.
type GeminiNativeStrategy struct{}

func (GeminiNativeStrategy) NewClient(ctx context.Context, p *Provider) (Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

func (GeminiNativeStrategy) Summarize(
	ctx context.Context,
	p *Provider,
	client Client,
	content string,
	prompts Prompts,
) (string, error) {
	c, ok := client.(*genai.Client)
	if !ok {
		return "", fmt.Errorf("unexpected client type %T", client)
	}

	resp, err := c.Models.GenerateContent(
		ctx,
		p.Model,
		genai.Text(prompts.UserPrefix+content),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompts.System, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("response text is missing")
	}

	return text, nil
}
