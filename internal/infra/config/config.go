package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported values for LLMConfig.Provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Supported values for PromptConfig.Source.
const (
	PromptSourceFile   = "file"
	PromptSourceS3     = "s3"
	PromptSourceValkey = "valkey"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	App    AppConfig    `yaml:"app"`
	HTTP   HTTPConfig   `yaml:"http"`
	LLM    LLMConfig    `yaml:"llm"`
	Prompt PromptConfig `yaml:"prompt"`
	Log    LogConfig    `yaml:"log"`
}

// AppConfig describes the service itself.
type AppConfig struct {
	Name    string `yaml:"name" env:"APP_NAME"`
	Version string `yaml:"version" env:"APP_VERSION"`
	Debug   bool   `yaml:"debug" env:"DEBUG"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS"`
	ReadTimeout  time.Duration `yaml:"readTimeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"writeTimeout" env:"HTTP_WRITE_TIMEOUT"`
	CORSOrigins  []string      `yaml:"corsOrigins" env:"HTTP_CORS_ORIGINS" envSeparator:","`
}

// LLMConfig contains text generation provider settings.
type LLMConfig struct {
	Provider      string        `yaml:"provider" env:"LLM_PROVIDER"`
	APIKey        string        `yaml:"apiKey" env:"GEMINI_API_KEY"`
	BaseURL       string        `yaml:"baseUrl" env:"LLM_BASE_URL"`
	Model         string        `yaml:"model" env:"GEMINI_MODEL"`
	Temperature   float32       `yaml:"temperature" env:"LLM_TEMPERATURE"` // 0 keeps the provider default
	Timeout       time.Duration `yaml:"timeout" env:"LLM_TIMEOUT"`
	MaxConcurrent int           `yaml:"maxConcurrent" env:"LLM_MAX_CONCURRENT"`
}

// PromptConfig selects where the horoscope prompt template is loaded from.
type PromptConfig struct {
	Source string       `yaml:"source" env:"PROMPT_SOURCE"`
	Path   string       `yaml:"path" env:"PROMPT_PATH"`
	S3     S3Config     `yaml:"s3"`
	Valkey ValkeyConfig `yaml:"valkey"`
}

// S3Config points at an object in any S3 compatible store (R2, MinIO, AWS).
type S3Config struct {
	Endpoint  string `yaml:"endpoint" env:"PROMPT_S3_ENDPOINT"`
	AccessKey string `yaml:"accessKey" env:"PROMPT_S3_ACCESS_KEY"`
	SecretKey string `yaml:"secretKey" env:"PROMPT_S3_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"PROMPT_S3_BUCKET"`
	Region    string `yaml:"region" env:"PROMPT_S3_REGION"`
	Key       string `yaml:"key" env:"PROMPT_S3_KEY"`
}

// ValkeyConfig contains connection information for the template key.
type ValkeyConfig struct {
	Addr string `yaml:"addr" env:"PROMPT_VALKEY_ADDR"`
	Key  string `yaml:"key" env:"PROMPT_VALKEY_KEY"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
	Dir   string `yaml:"dir" env:"LOG_DIR"`
}

// Load reads configuration from a YAML file, an optional .env file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	// Real environment variables win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "Free Daily Horoscope API",
			Version: "1.0.0",
		},
		HTTP: HTTPConfig{
			Address:      ":8000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 45 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		LLM: LLMConfig{
			Provider:      ProviderGemini,
			Model:         "gemini-2.5-flash",
			Timeout:       30 * time.Second,
			MaxConcurrent: 16,
		},
		Prompt: PromptConfig{
			Source: PromptSourceFile,
			Path:   "configs/horoscope_prompt.txt",
			Valkey: ValkeyConfig{Key: "horoscope:prompt"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.WriteTimeout > 0 && c.HTTP.WriteTimeout <= c.LLM.Timeout {
		return errors.New("http.writeTimeout must exceed llm.timeout")
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.New("llm.apiKey is required (set GEMINI_API_KEY)")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	if c.LLM.MaxConcurrent <= 0 {
		return errors.New("llm.maxConcurrent must be positive")
	}
	switch c.Prompt.Source {
	case PromptSourceFile:
		if strings.TrimSpace(c.Prompt.Path) == "" {
			return errors.New("prompt.path cannot be empty when prompt.source is file")
		}
	case PromptSourceS3:
		if strings.TrimSpace(c.Prompt.S3.Endpoint) == "" || strings.TrimSpace(c.Prompt.S3.Bucket) == "" || strings.TrimSpace(c.Prompt.S3.Key) == "" {
			return errors.New("prompt.s3 endpoint, bucket and key are required when prompt.source is s3")
		}
	case PromptSourceValkey:
		if strings.TrimSpace(c.Prompt.Valkey.Addr) == "" || strings.TrimSpace(c.Prompt.Valkey.Key) == "" {
			return errors.New("prompt.valkey addr and key are required when prompt.source is valkey")
		}
	default:
		return fmt.Errorf("prompt.source %q is not supported", c.Prompt.Source)
	}
	return nil
}
