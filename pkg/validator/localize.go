package validator

import (
	"embed"
	"fmt"
	"slices"
	"strings"
)

// Locales holds the message catalogue for every translation key used by the
// built-in rules, one YAML file per language under "locales".
//
//go:embed locales/*.yaml
var Locales embed.FS

// Translator renders a translation key with named arguments given as
// key, value pairs. i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Localize renders the error through tr. The English Message is used when the
// translator is nil or has no entry for the key.
func (e ValidationError) Localize(tr Translator, lang string) string {
	if tr == nil || e.TranslationKey == "" {
		return e.Error()
	}

	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, formatValue(e.TranslationValues[k]))
	}

	msg := tr.T(lang, e.TranslationKey, args...)
	if msg == "" || msg == e.TranslationKey {
		return e.Error()
	}
	return msg
}

// Localize renders every error through tr, keeping their order.
func (ve ValidationErrors) Localize(tr Translator, lang string) []string {
	msgs := make([]string, 0, len(ve))
	for _, err := range ve {
		msgs = append(msgs, err.Localize(tr, lang))
	}
	return msgs
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
