package horoscope

import (
	"time"

	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
	"github.com/yanqian/ai-horoscope/pkg/metrics"
)

// Request represents the incoming horoscope payload.
type Request struct {
	BirthDate string `json:"birth_date"`
	UserName  string `json:"user_name"`
}

// Result is produced once per request and never stored.
type Result struct {
	Horoscope  string              `json:"horoscope"`
	ZodiacSign zodiac.Sign         `json:"zodiac_sign"`
	TokenUsage *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// Config configures text generation dispatch.
type Config struct {
	Model         string
	Timeout       time.Duration
	MaxConcurrent int
}
