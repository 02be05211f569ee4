package provider

// Default models and endpoints for the concrete bindings.
const (
	OllamaName         = "Ollama"
	OllamaDefaultModel = "llama3.2:latest"
	// Ollama's OpenAI-compatible endpoint needs a key header but ignores
	// its value.
	ollamaPlaceholderKey = "ollama"

	OpenAIName         = "OpenAI"
	OpenAIDefaultModel = "gpt-4o-mini"

	GeminiNativeName         = "Google Gemini (Native)"
	GeminiNativeDefaultModel = "gemini-2.5-pro"

	GeminiOpenAIName         = "Google Gemini (OpenAI API)"
	GeminiOpenAIDefaultModel = "gemini-2.5-flash"
	geminiOpenAIBaseURL      = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// Option adjusts a binding away from its defaults.
type Option func(*Provider)

// WithModel overrides the binding's default model identifier.
func WithModel(model string) Option {
	return func(p *Provider) {
		if model != "" {
			p.Model = model
		}
	}
}

// WithStrategy overrides the binding's default strategy.
func WithStrategy(s Strategy) Option {
	return func(p *Provider) {
		if s != nil {
			p.strategy = s
		}
	}
}

// NewOllama binds a local Ollama server. No real API key is required; the
// OpenAI-compatible strategy is the default and WithStrategy selects the
// native one.
func NewOllama(baseURL string, opts ...Option) *Provider {
	p := New(OllamaName, OllamaDefaultModel, ollamaPlaceholderKey, baseURL, OpenAIChatStrategy{})
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewOpenAI binds the hosted OpenAI API. The key comes from the caller, read
// once from the environment at process start.
func NewOpenAI(apiKey string, opts ...Option) *Provider {
	p := New(OpenAIName, OpenAIDefaultModel, apiKey, "", OpenAIChatStrategy{})
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewGemini binds Google Gemini. The backend speaks two wire formats, so the
// strategy is a required argument here: the native SDK strategy or the
// OpenAI-compatible one. Name, default model and base URL follow the choice.
func NewGemini(strategy Strategy, apiKey string, opts ...Option) *Provider {
	name := GeminiOpenAIName
	model := GeminiOpenAIDefaultModel
	baseURL := geminiOpenAIBaseURL

	if _, native := strategy.(GeminiNativeStrategy); native {
		name = GeminiNativeName
		model = GeminiNativeDefaultModel
		baseURL = ""
	}

	p := New(name, model, apiKey, baseURL, strategy)
	for _, opt := range opts {
		opt(p)
	}

	return p
}
