package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// NormalizeLanguage reduces a language tag or POSIX locale to its lower-case
// base language: "ru_RU.UTF-8" -> "ru", "en-GB" -> "en".
// Unparseable input yields an empty string.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")
	if lang == "" || strings.EqualFold(lang, "C") || strings.EqualFold(lang, "POSIX") {
		return ""
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return strings.ToLower(base.String())
}
