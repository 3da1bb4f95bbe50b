package metrics

import (
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

const fallbackEncoding = "cl100k_base"

// Encodings ship inside the binary; the counter never downloads BPE ranks.
var registerLoader sync.Once

// TokenCounter estimates prompt sizes with a BPE tokenizer. Non OpenAI models are
// approximated with cl100k_base.
type TokenCounter struct {
	model  string
	logger *slog.Logger

	once sync.Once
	enc  *tiktoken.Tiktoken
}

// NewTokenCounter builds a counter for model. Call Warm before serving so that
// no request pays for loading the encoding.
func NewTokenCounter(model string, logger *slog.Logger) *TokenCounter {
	if logger == nil {
		logger = slog.Default()
	}
	registerLoader.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
	})
	return &TokenCounter{model: model, logger: logger.With("component", "metrics.tokens")}
}

// Warm loads the encoding and reports whether counting is available.
func (c *TokenCounter) Warm() bool {
	if c == nil {
		return false
	}
	c.once.Do(c.init)
	return c.enc != nil
}

func (c *TokenCounter) init() {
	enc, err := tiktoken.EncodingForModel(c.model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
	}
	if err != nil {
		c.logger.Warn("token counter unavailable", "model", c.model, "error", err)
		return
	}
	c.enc = enc
}

// Usage returns prompt usage for text, or a zero TokenUsage when no encoding is available.
func (c *TokenCounter) Usage(text string) TokenUsage {
	if !c.Warm() {
		return TokenUsage{}
	}
	n := len(c.enc.Encode(text, nil, nil))
	return TokenUsage{PromptTokens: n, TotalTokens: n}
}
