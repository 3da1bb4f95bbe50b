package llm

import (
	"context"
	"fmt"

	"github.com/yanqian/ai-horoscope/internal/domain/horoscope"
	"github.com/yanqian/ai-horoscope/internal/infra/config"
	"github.com/yanqian/ai-horoscope/internal/infra/llm/chatgpt"
	"github.com/yanqian/ai-horoscope/internal/infra/llm/gemini"
)

// NewTextModel returns the provider selected by cfg.Provider along with its cleanup.
func NewTextModel(ctx context.Context, cfg config.LLMConfig) (horoscope.TextModel, func(), error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		client, err := gemini.NewClient(ctx, cfg.APIKey, cfg.Model, cfg.Temperature)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	case config.ProviderOpenAI:
		client, err := chatgpt.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
