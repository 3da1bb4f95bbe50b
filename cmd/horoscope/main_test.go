package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSignCommand(t *testing.T) {
	out, err := execute(t, "sign", "1990-06-15")
	require.NoError(t, err)
	require.Contains(t, out, "Sign:        Gemini")
	require.Contains(t, out, "Element:     Air")
}

func TestSignCommandRejectsBadDate(t *testing.T) {
	_, err := execute(t, "sign", "1890-06-15")
	require.ErrorContains(t, err, zodiac.MsgBefore1900)

	_, err = execute(t, "sign")
	require.Error(t, err)
}

func TestPromptCommandDefaultsUserName(t *testing.T) {
	out, err := execute(t, "prompt", "2000-01-01")
	require.NoError(t, err)
	require.Contains(t, out, "Capricorn")
	require.Contains(t, out, "dear friend")
}

func TestPromptCommandWithTemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("{user_name} is a {zodiac_sign} ({element})."), 0o600))

	out, err := execute(t, "prompt", "1990-06-15", "--name", "Alex", "--template", path)
	require.NoError(t, err)
	require.Equal(t, "Alex is a Gemini (Air).\n", out)
}
