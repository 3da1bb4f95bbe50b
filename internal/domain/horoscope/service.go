package horoscope

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
	apperrors "github.com/yanqian/ai-horoscope/pkg/errors"
	"github.com/yanqian/ai-horoscope/pkg/metrics"
)

// Service produces daily horoscopes.
type Service interface {
	Produce(ctx context.Context, req Request) (Result, error)
}

type Classifier interface {
	Validate(raw string) (time.Time, error)
	SignFor(month time.Month, day int) zodiac.Sign
}

type PromptBuilder interface {
	Build(sign zodiac.Sign, traits zodiac.Traits, userName string) (string, error)
}

type TextGenerator interface {
	Generate(ctx context.Context, sign zodiac.Sign, prompt string) string
}

type UsageCounter interface {
	Usage(text string) metrics.TokenUsage
}

type service struct {
	classifier Classifier
	prompts    PromptBuilder
	generator  TextGenerator
	usage      UsageCounter
	logger     *slog.Logger
}

// NewService wires up the horoscope pipeline. usage may be nil.
func NewService(classifier Classifier, prompts PromptBuilder, generator TextGenerator, usage UsageCounter, logger *slog.Logger) Service {
	return &service{
		classifier: classifier,
		prompts:    prompts,
		generator:  generator,
		usage:      usage,
		logger:     logger.With("component", "horoscope.service"),
	}
}

// Produce validates the birth date before any provider call. Validation failures are
// returned unchanged as invalid_input; every other fault becomes generation_failed.
// Provider failures never reach this level.
func (s *service) Produce(ctx context.Context, req Request) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("horoscope pipeline panicked", "panic", r)
			res, err = Result{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "unable to generate horoscope", fmt.Errorf("%v", r))
		}
	}()

	date, err := s.classifier.Validate(req.BirthDate)
	if err != nil {
		return Result{}, err
	}

	sign := s.classifier.SignFor(date.Month(), date.Day())
	traits := zodiac.TraitsFor(sign)

	prompt, err := s.prompts.Build(sign, traits, strings.TrimSpace(req.UserName))
	if err != nil {
		s.logger.Error("prompt render failed", "sign", sign, "error", err)
		return Result{}, apperrors.Wrap(apperrors.CodeGenerationFailed, "unable to generate horoscope", err)
	}

	res = Result{ZodiacSign: sign}
	if s.usage != nil {
		if usage := s.usage.Usage(prompt); !usage.IsZero() {
			res.TokenUsage = &usage
			s.logger.Debug("prompt rendered", "sign", sign, "prompt_tokens", usage.PromptTokens)
		}
	}

	res.Horoscope = s.generator.Generate(ctx, sign, prompt)
	return res, nil
}
