// Package i18n is a small message catalogue used to localize validation errors.
//
// Translations are loaded through a TranslationAdapter: MapAdapter for
// in-memory data, FSAdapter for a directory of YAML files in any fs.FS
// (usually an embed.FS). Keys are dot-separated paths into nested maps and
// values may contain named "%{placeholder}" markers:
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Locales, "locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//	msg := tr.T(tr.Resolve("ru_RU.UTF-8"), "validation.between", "field", "buns", "min", "2", "max", "3")
//
// Resolve and NormalizeLanguage accept BCP 47 tags as well as POSIX locale
// strings taken from LANG-like environment variables.
package i18n
