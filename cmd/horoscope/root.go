package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "horoscope",
		Short: "Daily horoscope tooling",
		Long: `horoscope runs the daily horoscope pipeline from the command line.

  horoscope sign 1990-06-15                 # zodiac sign and traits
  horoscope prompt 1990-06-15 --name Alex   # rendered prompt, no provider call
  horoscope read 1990-06-15 --name Alex     # full reading via the configured provider`,
		SilenceUsage: true,
	}
	root.AddCommand(newSignCmd(), newPromptCmd(), newReadCmd())
	return root
}

// quietLogger keeps component logs out of command output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStderrLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}
