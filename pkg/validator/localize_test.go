package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/burger/pkg/i18n"
	"github.com/dmitrymomot/burger/pkg/validator"
)

func newCatalogue(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(),
		i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Locales, "locales"),
	)
	require.NoError(t, err)
	return tr
}

func TestLocales(t *testing.T) {
	tr := newCatalogue(t)
	assert.Equal(t, []string{"en", "ru"}, tr.SupportedLanguages())

	keys := []string{
		"validation.between",
		"validation.in_list",
		"validation.quantity_type",
		"validation.type_mismatch",
		"validation.attribute_missing",
		"validation.invalid",
	}
	for _, lang := range tr.SupportedLanguages() {
		for _, key := range keys {
			assert.True(t, tr.HasTranslation(lang, key), "%s: %s", lang, key)
		}
	}
}

func TestValidationErrors_Localize(t *testing.T) {
	tr := newCatalogue(t)

	t.Run("renders range errors", func(t *testing.T) {
		errs := validator.ExtractValidationErrors(validator.NewRangeRule(2, 3).Validate("buns", 1))
		require.Len(t, errs, 1)

		assert.Equal(t,
			[]string{"buns: quantity should not be less than 2 and greater than 3"},
			errs.Localize(tr, "en"))
		assert.Equal(t,
			[]string{"buns: количество должно быть не меньше 2 и не больше 3"},
			errs.Localize(tr, "ru"))
	})

	t.Run("renders membership errors with joined options", func(t *testing.T) {
		errs := validator.ExtractValidationErrors(validator.OneOf("ketchup", "mayo").Validate("sauce", "mustard"))
		require.Len(t, errs, 1)

		assert.Equal(t, "sauce: expected mustard to be one of: ketchup, mayo", errs[0].Localize(tr, "en"))
	})

	t.Run("renders type mismatch", func(t *testing.T) {
		errs := validator.ExtractValidationErrors(validator.NewRangeRule(0, 2).Validate("eggs", "two"))
		require.Len(t, errs, 1)

		assert.Equal(t, "eggs: количество должно быть целым числом", errs[0].Localize(tr, "ru"))
	})

	t.Run("falls back to message for unknown language", func(t *testing.T) {
		errs := validator.ExtractValidationErrors(validator.NewRangeRule(2, 3).Validate("buns", 9))
		assert.Equal(t,
			[]string{"buns: quantity should not be less than 2 and greater than 3"},
			errs.Localize(tr, "de"))
	})

	t.Run("falls back to message without translator", func(t *testing.T) {
		err := validator.ValidationError{Field: "buns", Message: "too many", TranslationKey: "validation.between"}
		assert.Equal(t, "buns: too many", err.Localize(nil, "en"))
	})

	t.Run("falls back to message without key", func(t *testing.T) {
		err := validator.ValidationError{Field: "buns", Message: "too many"}
		assert.Equal(t, "buns: too many", err.Localize(tr, "en"))
	})
}
