package config_test

import (
	"os"
	"testing"

	"websumm/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "OLLAMA_BASE_URL"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}

	cfg := config.LoadConfig()

	if cfg.OllamaBaseURL != "http://localhost:11434/v1" {
		t.Fatalf("unexpected default Ollama base URL: %q", cfg.OllamaBaseURL)
	}
	if cfg.OpenAIAPIKey != "" || cfg.GeminiAPIKey != "" {
		t.Fatalf("expected empty keys, got %+v", cfg)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama.lan:11434/v1")

	cfg := config.LoadConfig()

	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("unexpected OpenAI key: %q", cfg.OpenAIAPIKey)
	}
	if cfg.GeminiAPIKey != "gm-test" {
		t.Fatalf("unexpected Gemini key: %q", cfg.GeminiAPIKey)
	}
	if cfg.OllamaBaseURL != "http://ollama.lan:11434/v1" {
		t.Fatalf("unexpected Ollama base URL: %q", cfg.OllamaBaseURL)
	}
}
