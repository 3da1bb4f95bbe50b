//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/ai-horoscope/internal/bootstrap"
	"github.com/yanqian/ai-horoscope/internal/domain/horoscope"
	"github.com/yanqian/ai-horoscope/internal/domain/prompt"
	"github.com/yanqian/ai-horoscope/internal/domain/zodiac"
	"github.com/yanqian/ai-horoscope/internal/infra/config"
	httpiface "github.com/yanqian/ai-horoscope/internal/interface/http"
	"github.com/yanqian/ai-horoscope/pkg/logger"
	"github.com/yanqian/ai-horoscope/pkg/metrics"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideHoroscopeConfig,
		provideTextModel,
		providePromptSource,
		providePromptTemplate,
		provideTokenCounter,
		zodiac.NewClassifier,
		prompt.NewBuilder,
		horoscope.NewGenerator,
		horoscope.NewService,
		wire.Bind(new(horoscope.Classifier), new(*zodiac.Classifier)),
		wire.Bind(new(horoscope.PromptBuilder), new(*prompt.Builder)),
		wire.Bind(new(horoscope.TextGenerator), new(*horoscope.Generator)),
		wire.Bind(new(horoscope.UsageCounter), new(*metrics.TokenCounter)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
