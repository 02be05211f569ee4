package provider

import (
	"context"
	"fmt"
)

// Client is the opaque per-backend handle a strategy constructs and later
// consumes. Concrete strategies type-assert it back to their own SDK client.
type Client any

// Prompts is the fixed prompt pair combined with page content on each call.
type Prompts struct {
	// System instructs the model how to behave.
	System string
	// UserPrefix is prepended to the page content to form the user message.
	UserPrefix string
}

// Strategy encapsulates how to talk to one backend wire format: how to build
// a client and how to perform a single summarize call. Strategies hold no
// state and may be shared across providers.
type Strategy interface {
	NewClient(ctx context.Context, p *Provider) (Client, error)
	Summarize(ctx context.Context, p *Provider, client Client, content string, prompts Prompts) (string, error)
}

// Provider binds a human-readable name, a model identifier, credentials and
// a communication strategy into one addressable backend. Immutable after
// construction.
type Provider struct {
	Name    string
	Model   string
	APIKey  string
	BaseURL string

	strategy Strategy
}

// New builds a provider from its parts. The concrete bindings in this
// package are the usual way to get one; New exists for custom backends.
func New(name, model, apiKey, baseURL string, strategy Strategy) *Provider {
	return &Provider{
		Name:     name,
		Model:    model,
		APIKey:   apiKey,
		BaseURL:  baseURL,
		strategy: strategy,
	}
}

// Strategy returns the injected strategy.
func (p *Provider) Strategy() Strategy {
	return p.strategy
}

// NewClient constructs the backend handle. Construction failures propagate.
func (p *Provider) NewClient(ctx context.Context) (Client, error) {
	return p.strategy.NewClient(ctx, p)
}

// Summarize performs exactly one summarization request. The backend error,
// if any, is returned as-is; ErrorText renders the one-line form shown in
// place of a summary.
func (p *Provider) Summarize(
	ctx context.Context,
	client Client,
	content string,
	prompts Prompts,
) (string, error) {
	return p.strategy.Summarize(ctx, p, client, content, prompts)
}

// ErrorText renders a failed summarize call the way it appears inline in
// place of a summary.
func ErrorText(name string, err error) string {
	return fmt.Sprintf("An error occurred with %s: %v", name, err)
}
