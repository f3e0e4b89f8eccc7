// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (reading .env files) and
// github.com/caarlos0/env/v11 (parsing tagged structs) and caches one parsed
// copy per configuration type for the lifetime of the process:
//
//	type AppConfig struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// LoadEnv reads custom .env files before parsing; values already present in
// the process environment are never overridden. ResetCache and
// ForceReloadConfig exist for tests that change the environment.
//
// Errors are sentinels (ErrParsingConfig, ErrLoadingEnvFile, ErrNilPointer,
// ErrConfigNotLoaded) joined with the underlying cause, so errors.Is works.
package config
