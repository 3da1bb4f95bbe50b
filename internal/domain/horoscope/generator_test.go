package horoscope

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
)

type stubModel struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
	calls      atomic.Int32
	lastPrompt atomic.Value
}

func (s *stubModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.calls.Add(1)
	s.lastPrompt.Store(prompt)
	if s.generateFn != nil {
		return s.generateFn(ctx, prompt)
	}
	return "A bright day awaits.", nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGenerator(model TextModel, timeout time.Duration, slots int) *Generator {
	return NewGenerator(Config{Model: "test-model", Timeout: timeout, MaxConcurrent: slots}, model, newTestLogger())
}

func TestGenerateReturnsTrimmedText(t *testing.T) {
	model := &stubModel{generateFn: func(ctx context.Context, prompt string) (string, error) {
		return "\n  Venus smiles on you.  \n", nil
	}}
	g := newTestGenerator(model, time.Second, 1)

	out := g.Generate(context.Background(), zodiac.Libra, "prompt")
	require.Equal(t, "Venus smiles on you.", out)
	require.Equal(t, "prompt", model.lastPrompt.Load())
}

func TestGenerateFallsBackOnProviderFailures(t *testing.T) {
	cases := map[string]func(ctx context.Context, prompt string) (string, error){
		"error": func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("quota exceeded")
		},
		"empty text": func(ctx context.Context, prompt string) (string, error) {
			return "   ", nil
		},
		"panic": func(ctx context.Context, prompt string) (string, error) {
			panic("malformed response")
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			g := newTestGenerator(&stubModel{generateFn: fn}, time.Second, 1)
			out := g.Generate(context.Background(), zodiac.Scorpio, "prompt")
			require.Equal(t, FallbackText(zodiac.Scorpio), out)
			require.Contains(t, out, "Scorpio")
		})
	}
}

func TestGenerateFallsBackOnTimeout(t *testing.T) {
	model := &stubModel{generateFn: func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	g := newTestGenerator(model, 20*time.Millisecond, 1)

	start := time.Now()
	out := g.Generate(context.Background(), zodiac.Aries, "prompt")
	require.Equal(t, FallbackText(zodiac.Aries), out)
	require.Less(t, time.Since(start), time.Second)
}

func TestGenerateFallsBackWhenCallerCancels(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	model := &stubModel{generateFn: func(ctx context.Context, prompt string) (string, error) {
		<-release
		return "too late", nil
	}}
	g := newTestGenerator(model, time.Minute, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, FallbackText(zodiac.Pisces), g.Generate(ctx, zodiac.Pisces, "prompt"))
}

func TestGenerateBoundsConcurrentProviderCalls(t *testing.T) {
	var active, peak atomic.Int32
	model := &stubModel{generateFn: func(ctx context.Context, prompt string) (string, error) {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return "ok", nil
	}}
	g := newTestGenerator(model, 5*time.Second, 2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "ok", g.Generate(context.Background(), zodiac.Leo, "prompt"))
		}()
	}
	wg.Wait()

	require.EqualValues(t, 8, model.calls.Load())
	require.LessOrEqual(t, peak.Load(), int32(2))
}

func TestFallbackText(t *testing.T) {
	require.Equal(t,
		"The stars are a bit cloudy today for Gemini. Try again in a moment, and the cosmic energies will align for your personalized reading!",
		FallbackText(zodiac.Gemini),
	)
}
