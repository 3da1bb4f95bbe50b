package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/ai-horoscope/internal/domain/horoscope"
	"github.com/yanqian/ai-horoscope/internal/domain/prompt"
	"github.com/yanqian/ai-horoscope/internal/infra/config"
	"github.com/yanqian/ai-horoscope/internal/infra/llm"
	"github.com/yanqian/ai-horoscope/internal/infra/promptsource"
	"github.com/yanqian/ai-horoscope/pkg/metrics"
)

const promptLoadTimeout = 5 * time.Second

func provideHoroscopeConfig(cfg *config.Config) horoscope.Config {
	return horoscope.Config{
		Model:         cfg.LLM.Model,
		Timeout:       cfg.LLM.Timeout,
		MaxConcurrent: cfg.LLM.MaxConcurrent,
	}
}

func provideTextModel(cfg *config.Config, logger *slog.Logger) (horoscope.TextModel, func(), error) {
	model, cleanup, err := llm.NewTextModel(context.Background(), cfg.LLM)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("text generation provider ready", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	return model, cleanup, nil
}

func providePromptSource(cfg *config.Config, logger *slog.Logger) (promptsource.Source, func()) {
	return promptsource.FromConfig(cfg.Prompt, logger)
}

func providePromptTemplate(src promptsource.Source, logger *slog.Logger) prompt.Template {
	ctx, cancel := context.WithTimeout(context.Background(), promptLoadTimeout)
	defer cancel()
	return promptsource.Load(ctx, src, logger)
}

// provideTokenCounter loads the encoding before the server accepts requests.
func provideTokenCounter(cfg *config.Config, logger *slog.Logger) *metrics.TokenCounter {
	counter := metrics.NewTokenCounter(cfg.LLM.Model, logger)
	if !counter.Warm() {
		logger.Warn("prompt token usage disabled")
	}
	return counter
}
