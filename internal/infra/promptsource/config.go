package promptsource

import (
	"log/slog"

	"github.com/yanqian/ai-horoscope/internal/infra/config"
)

// FromConfig builds the configured source. A source that cannot be constructed is
// logged and reported as nil so Load falls back to the built-in template.
func FromConfig(cfg config.PromptConfig, logger *slog.Logger) (Source, func()) {
	noop := func() {}
	switch cfg.Source {
	case config.PromptSourceS3:
		src, err := NewS3Source(cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Key)
		if err != nil {
			logger.Error("invalid s3 prompt source", "error", err)
			return nil, noop
		}
		return src, noop
	case config.PromptSourceValkey:
		client, err := DialValkey(cfg.Valkey.Addr)
		if err != nil {
			logger.Error("valkey prompt source unavailable", "addr", cfg.Valkey.Addr, "error", err)
			return nil, noop
		}
		return NewValkeySource(client, cfg.Valkey.Key), client.Close
	default:
		if cfg.Path == "" {
			return nil, noop
		}
		return NewFileSource(cfg.Path), noop
	}
}
