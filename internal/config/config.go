package config

import "github.com/caarlos0/env/v11"

type Config struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434/v1"`
}

func LoadConfig() Config {
	var cfg Config
	env.Must(cfg, env.Parse(&cfg))
	return cfg
}
