package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanqian/ai-horoscope/internal/domain/horoscope"
	"github.com/yanqian/ai-horoscope/internal/domain/prompt"
	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
	"github.com/yanqian/ai-horoscope/internal/infra/config"
	"github.com/yanqian/ai-horoscope/internal/infra/llm"
	"github.com/yanqian/ai-horoscope/internal/infra/promptsource"
	"github.com/yanqian/ai-horoscope/pkg/metrics"
)

func newReadCmd() *cobra.Command {
	var (
		name    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "read <YYYY-MM-DD>",
		Short: "Generate a horoscope with the configured provider",
		Long: `read loads configuration exactly like the server (configs/config.yaml, .env,
environment) and prints the resulting JSON document. GEMINI_API_KEY must be set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := quietLogger()
			if verbose {
				logger = newStderrLogger(cmd)
			}

			src, closeSource := promptsource.FromConfig(cfg.Prompt, logger)
			defer closeSource()
			tmpl := promptsource.Load(cmd.Context(), src, logger)

			model, closeModel, err := llm.NewTextModel(cmd.Context(), cfg.LLM)
			if err != nil {
				return err
			}
			defer closeModel()

			counter := metrics.NewTokenCounter(cfg.LLM.Model, logger)
			counter.Warm()

			svc := horoscope.NewService(
				zodiac.NewClassifier(logger),
				prompt.NewBuilder(tmpl),
				horoscope.NewGenerator(horoscope.Config{
					Model:         cfg.LLM.Model,
					Timeout:       cfg.LLM.Timeout,
					MaxConcurrent: 1,
				}, model, logger),
				counter,
				logger,
			)

			res, err := svc.Produce(cmd.Context(), horoscope.Request{BirthDate: args[0], UserName: name})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name to address in the reading")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline events to stderr")
	return cmd
}
