package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
// Context cancellation errors are separated to allow proper error handling in timeouts.
var (
	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrNoTranslationFiles = errors.New("no translation files found")

	// Directory operations
	ErrFailedToReadDirectory        = errors.New("failed to read directory")
	ErrLoadingTranslationsCancelled = errors.New("loading translations canceled before starting")
)
