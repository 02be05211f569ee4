package summarizer

import (
	"context"
	"fmt"
	"log/slog"

	"websumm/internal/provider"
	"websumm/internal/render"
)

const (
	systemPrompt = `You are a helpful assistant that analyzes website content and provides clear, concise summaries.
Focus on the main content and key information, ignoring navigation elements, headers, and footers.
Provide your response in markdown format without wrapping it in code blocks.`

	userPromptPrefix = `Here are the contents of a website.
Provide a short summary of this website.
If it includes news or announcements, then summarize these too.

`
)

// Fetcher retrieves the plain text of a web page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Summarizer sequences one end-to-end summarization per (provider, URL)
// pair: fetch, build the client, summarize, render.
type Summarizer struct {
	fetcher  Fetcher
	renderer *render.Renderer
	log      *slog.Logger
}

func New(fetcher Fetcher, renderer *render.Renderer, log *slog.Logger) *Summarizer {
	return &Summarizer{
		fetcher:  fetcher,
		renderer: renderer,
		log:      log,
	}
}

// Prompts returns the fixed prompt pair sent with every request.
func Prompts() provider.Prompts {
	return provider.Prompts{
		System:     systemPrompt,
		UserPrefix: userPromptPrefix,
	}
}

// Run summarizes one URL with one provider and renders the result. Fetch and
// client-construction failures propagate; a failed backend call is rendered
// inline in place of its summary so the remaining providers still run.
func (s *Summarizer) Run(ctx context.Context, p *provider.Provider, url string) error {
	if p.APIKey == "" {
		s.log.WarnContext(ctx, "Skipping provider without API key",
			"provider", p.Name)
		s.renderer.Skip("Error", fmt.Sprintf("API key for %s not found. Skipping.", p.Name))

		return nil
	}

	s.log.InfoContext(ctx, "Fetching page",
		"provider", p.Name,
		"url", url)

	content, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch page: %w", err)
	}

	client, err := p.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	s.log.InfoContext(ctx, "Querying provider",
		"provider", p.Name,
		"model", p.Model,
		"contentLength", len(content))

	summary, err := p.Summarize(ctx, client, content, Prompts())
	if err != nil {
		s.log.WarnContext(ctx, "Summarize call failed",
			"error", err,
			"provider", p.Name,
			"model", p.Model)

		summary = provider.ErrorText(p.Name, err)
	}

	s.renderer.Summary(fmt.Sprintf("%s (%s)", p.Name, p.Model), summary)

	return nil
}
