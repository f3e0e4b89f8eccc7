package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/burger/pkg/config"
	"github.com/dmitrymomot/burger/pkg/i18n"
	"github.com/dmitrymomot/burger/pkg/logger"
	"github.com/dmitrymomot/burger/pkg/validator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(i18n.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	tr, err := newTranslator(ctx, cfg.Lang, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		os.Exit(1)
	}

	cmd := newCommand(tr, os.Stdout, os.Stderr)
	if err := cmd.Run(ctx, os.Args); err != nil {
		if !errors.Is(err, errInvalidRecipe) {
			log.ErrorContext(ctx, "burger failed", logger.Error(err))
		}
		os.Exit(1)
	}
}

func newTranslator(ctx context.Context, lang string, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Locales, "locales"),
		i18n.WithDefaultLanguage(lang),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}
