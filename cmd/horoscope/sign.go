package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
)

func newSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <YYYY-MM-DD>",
		Short: "Print the zodiac sign and traits for a birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sign, traits, err := zodiac.NewClassifier(quietLogger()).Classify(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sign:        %s\n", sign)
			fmt.Fprintf(out, "Element:     %s\n", traits.Element)
			fmt.Fprintf(out, "Traits:      %s\n", strings.Join(traits.Traits, ", "))
			fmt.Fprintf(out, "Focus areas: %s\n", strings.Join(traits.FocusAreas, ", "))
			return nil
		},
	}
}
