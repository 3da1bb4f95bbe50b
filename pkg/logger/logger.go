package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yanqian/ai-horoscope/internal/infra/config"
)

// New constructs a JSON slog logger. When cfg.Log.Dir is set, records are also
// appended to a daily file named horoscope_api_YYYYMMDD.log inside that directory.
func New(cfg *config.Config) (*slog.Logger, func(), error) {
	var (
		out     io.Writer = os.Stdout
		cleanup           = func() {}
	)
	if dir := strings.TrimSpace(cfg.Log.Dir); dir != "" {
		file, err := openDailyFile(dir, time.Now())
		if err != nil {
			return nil, nil, err
		}
		out = io.MultiWriter(os.Stdout, file)
		cleanup = func() { _ = file.Close() }
	}
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)})
	return slog.New(handler).With("service", "horoscope"), cleanup, nil
}

func openDailyFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	name := filepath.Join(dir, "horoscope_api_"+now.Format("20060102")+".log")
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
