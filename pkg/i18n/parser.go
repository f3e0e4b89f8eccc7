package i18n

import "context"

// Parser turns the content of a translation file into a per-language map.
type Parser interface {
	// Parse returns translations keyed by language code.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles files with
	// the given extension, with or without the leading dot.
	SupportsFileExtension(ext string) bool
}
