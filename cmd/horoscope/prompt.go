package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanqian/ai-horoscope/internal/domain/prompt"
	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
	"github.com/yanqian/ai-horoscope/internal/infra/promptsource"
)

func newPromptCmd() *cobra.Command {
	var (
		name         string
		templatePath string
	)
	cmd := &cobra.Command{
		Use:   "prompt <YYYY-MM-DD>",
		Short: "Render the prompt that would be sent to the provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := quietLogger()
			sign, traits, err := zodiac.NewClassifier(logger).Classify(args[0])
			if err != nil {
				return err
			}

			var src promptsource.Source
			if templatePath != "" {
				src = promptsource.NewFileSource(templatePath)
			}
			tmpl := promptsource.Load(context.Background(), src, logger)

			text, err := prompt.NewBuilder(tmpl).Build(sign, traits, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name to address in the reading")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Prompt template file (default: built-in template)")
	return cmd
}
