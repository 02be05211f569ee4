package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/xurls/v2"

	"websumm/internal/config"
	"websumm/internal/provider"
	"websumm/internal/render"
	"websumm/internal/scraper"
	"websumm/internal/summarizer"
)

const defaultURL = "https://www.anthropic.com"

const (
	choiceOllama       = "ollama"
	choiceOllamaNative = "ollama-native"
	choiceOpenAI       = "openai"
	choiceGeminiOpenAI = "gemini-openai"
	choiceGeminiNative = "gemini-native"
	choiceAll          = "all"
)

type namedProvider struct {
	key string
	p   *provider.Provider
}

func newRootCommand(log *slog.Logger) *cobra.Command {
	var providerFlag string

	cmd := &cobra.Command{
		Use:           "websumm [url]",
		Short:         "Summarize a web page with local and cloud LLM providers",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pageURL := defaultURL
			if len(args) == 1 {
				pageURL = args[0]
			}

			if err := validateURL(pageURL); err != nil {
				return err
			}

			cfg := config.LoadConfig()

			selected, err := selectProviders(cfg, providerFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			log.InfoContext(ctx, "Summarizing page",
				"url", pageURL,
				"providerCount", len(selected))

			renderer := render.New(cmd.OutOrStdout())
			s := summarizer.New(scraper.New(log), renderer, log)

			for _, np := range selected {
				if err := s.Run(ctx, np.p, pageURL); err != nil {
					return fmt.Errorf("%s: %w", np.p.Name, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&providerFlag, "provider", "p", choiceAll,
		fmt.Sprintf("provider to use: %s", strings.Join(providerChoices(), ", ")))

	return cmd
}

func providerChoices() []string {
	return []string{
		choiceOllama,
		choiceOllamaNative,
		choiceOpenAI,
		choiceGeminiOpenAI,
		choiceGeminiNative,
		choiceAll,
	}
}

// providerList is the static set of backends, in display order.
func providerList(cfg config.Config) []namedProvider {
	return []namedProvider{
		{choiceOllama, provider.NewOllama(cfg.OllamaBaseURL)},
		{choiceOllamaNative, provider.NewOllama(
			cfg.OllamaBaseURL,
			provider.WithStrategy(provider.OllamaNativeStrategy{}),
		)},
		{choiceOpenAI, provider.NewOpenAI(cfg.OpenAIAPIKey)},
		{choiceGeminiOpenAI, provider.NewGemini(provider.OpenAIChatStrategy{}, cfg.GeminiAPIKey)},
		{choiceGeminiNative, provider.NewGemini(provider.GeminiNativeStrategy{}, cfg.GeminiAPIKey)},
	}
}

func selectProviders(cfg config.Config, choice string) ([]namedProvider, error) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	list := providerList(cfg)

	if choice == "" || choice == choiceAll {
		return list, nil
	}

	for _, np := range list {
		if np.key == choice {
			return []namedProvider{np}, nil
		}
	}

	return nil, fmt.Errorf("unknown provider %q (choose one of: %s)",
		choice, strings.Join(providerChoices(), ", "))
}

func validateURL(raw string) error {
	re, err := xurls.StrictMatchingScheme("https?://")
	if err != nil {
		return fmt.Errorf("create regexp: %w", err)
	}

	if re.FindString(raw) != raw {
		return fmt.Errorf("invalid URL %q: must start with http:// or https://", raw)
	}

	return nil
}
