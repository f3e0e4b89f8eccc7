// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers so every component names its log keys the same way.
//
// New creates a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs the registered ContextExtractor
// callbacks on every record:
//
//	log := logger.New(
//		logger.WithEnvironment("development", "burger"),
//		logger.WithLevelName("debug"),
//		logger.WithContextExtractors(i18n.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	slog.Debug("field rejected", logger.Field("buns"), logger.Value(1), logger.Error(err))
//
// Invalid formats and level names panic: a misconfigured logger should stop
// the program at startup.
package logger
