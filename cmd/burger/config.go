package main

// appConfig is read from the process environment and an optional .env file.
type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"burger"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Lang      string `env:"APP_LANG" envDefault:"en"`
}
