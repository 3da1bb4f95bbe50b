package promptsource

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yanqian/ai-horoscope/internal/domain/prompt"
)

// ErrNotFound reports that the configured location holds no template.
var ErrNotFound = errors.New("prompt template not found")

// Source fetches the raw horoscope prompt template.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}

// Load reads the template from src. It never fails: any fetch error, empty
// body or malformed template yields prompt.DefaultTemplate.
func Load(ctx context.Context, src Source, logger *slog.Logger) prompt.Template {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "promptsource")
	if src == nil {
		logger.Info("no prompt source configured, using built-in template")
		return prompt.DefaultTemplate
	}

	raw, err := src.Fetch(ctx)
	if err != nil {
		logger.Warn("prompt template unavailable, using built-in template", "source", src.Name(), "error", err)
		return prompt.DefaultTemplate
	}
	if strings.TrimSpace(raw) == "" {
		logger.Warn("prompt template is empty, using built-in template", "source", src.Name())
		return prompt.DefaultTemplate
	}
	if err := prompt.Check(raw); err != nil {
		logger.Warn("prompt template rejected, using built-in template", "source", src.Name(), "error", err)
		return prompt.DefaultTemplate
	}

	logger.Info("prompt template loaded", "source", src.Name(), "bytes", len(raw))
	return prompt.Template(raw)
}
