package horoscope

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
)

// TextModel is a provider capable of turning a prompt into text. Implementations
// block for the whole provider round trip.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

var errEmptyText = errors.New("provider returned empty text")

// FallbackText is returned in place of a horoscope whenever generation fails.
func FallbackText(sign zodiac.Sign) string {
	return fmt.Sprintf("The stars are a bit cloudy today for %s. Try again in a moment, and the cosmic energies will align for your personalized reading!", sign)
}

// Generator wraps a TextModel so that provider failures degrade to FallbackText
// instead of surfacing as errors.
type Generator struct {
	cfg    Config
	model  TextModel
	slots  *semaphore.Weighted
	logger *slog.Logger
}

// NewGenerator bounds in-flight provider calls to cfg.MaxConcurrent.
func NewGenerator(cfg Config, model TextModel, logger *slog.Logger) *Generator {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Generator{
		cfg:    cfg,
		model:  model,
		slots:  semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
		logger: logger.With("component", "horoscope.generator"),
	}
}

// Generate returns generated text for prompt, or FallbackText(sign) on any failure.
// It never returns an error and never panics on provider faults.
func (g *Generator) Generate(ctx context.Context, sign zodiac.Sign, prompt string) string {
	g.logger.Info("generating horoscope", "sign", sign, "model", g.cfg.Model)
	start := time.Now()

	text, err := g.dispatch(ctx, prompt)
	if err != nil {
		g.logger.Error("text generation failed, returning fallback", "sign", sign, "model", g.cfg.Model, "error", err)
		return FallbackText(sign)
	}

	g.logger.Info("text generation succeeded", "sign", sign, "chars", len(text), "latency_ms", time.Since(start).Milliseconds())
	return text
}

type generation struct {
	text string
	err  error
}

// dispatch is the boundary between request goroutines and the blocking provider call.
// The call runs on its own goroutine while holding a pool slot; the caller waits for
// either the result or its deadline, whichever comes first. A slot is released only
// when the provider call actually returns.
func (g *Generator) dispatch(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	if err := g.slots.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("wait for generation slot: %w", err)
	}

	done := make(chan generation, 1)
	go func() {
		defer g.slots.Release(1)
		defer func() {
			if r := recover(); r != nil {
				done <- generation{err: fmt.Errorf("provider panic: %v", r)}
			}
		}()
		text, err := g.model.GenerateText(ctx, prompt)
		done <- generation{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		text := strings.TrimSpace(res.text)
		if text == "" {
			return "", errEmptyText
		}
		return text, nil
	case <-ctx.Done():
		return "", fmt.Errorf("await provider: %w", ctx.Err())
	}
}
