package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/burger/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"greeting": "Hello",
			"validation": map[string]any{
				"between": "%{field}: between %{min} and %{max}",
			},
		},
		"ru": {
			"greeting": "Привет",
			"validation": map[string]any{
				"between": "%{field}: от %{min} до %{max}",
			},
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("fails with nil adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), nil)
		assert.Error(t, err)
		assert.Nil(t, tr)
	})

	t.Run("accepts empty adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
	})

	t.Run("rejects empty language code", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{"": {"a": "b"}},
		})
		assert.Error(t, err)
	})

	t.Run("rejects nil language map", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{"en": nil},
		})
		assert.Error(t, err)
	})

	t.Run("lists sorted languages", func(t *testing.T) {
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"en", "ru"}, tr.SupportedLanguages())
	})
}

func TestTranslatorT(t *testing.T) {
	tr := newTestTranslator(t)

	t.Run("simple key", func(t *testing.T) {
		assert.Equal(t, "Hello", tr.T("en", "greeting"))
		assert.Equal(t, "Привет", tr.T("ru", "greeting"))
	})

	t.Run("nested key with placeholders", func(t *testing.T) {
		msg := tr.T("ru", "validation.between", "field", "buns", "min", "2", "max", "3")
		assert.Equal(t, "buns: от 2 до 3", msg)
	})

	t.Run("unknown placeholders are kept", func(t *testing.T) {
		msg := tr.T("en", "validation.between", "field", "buns")
		assert.Equal(t, "buns: between %{min} and %{max}", msg)
	})

	t.Run("odd argument is ignored", func(t *testing.T) {
		msg := tr.T("en", "validation.between", "field", "buns", "min")
		assert.Equal(t, "buns: between %{min} and %{max}", msg)
	})

	t.Run("falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
		assert.Equal(t, "greeting", tr.T("de", "greeting"))
	})

	t.Run("non string value falls back to key", func(t *testing.T) {
		assert.Equal(t, "validation", tr.T("en", "validation"))
	})

	t.Run("returns empty string without fallback", func(t *testing.T) {
		strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("en", "missing.key"))
		assert.Empty(t, strict.T("de", "greeting"))
	})
}

func TestTranslatorTdTc(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "Hello", tr.Td("en", "greeting", "Hi"))
	assert.Equal(t, "Hi buns", tr.Td("en", "missing", "Hi %{name}", "name", "buns"))
	assert.Equal(t, "Hi", tr.Td("de", "greeting", "Hi"))

	ctx := i18n.SetLocale(context.Background(), "ru")
	assert.Equal(t, "Привет", tr.Tc(ctx, "greeting"))
	assert.Equal(t, "Hello", tr.Tc(context.Background(), "greeting"))
}

func TestTranslatorHasTranslation(t *testing.T) {
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("en", "validation.between"))
	assert.False(t, tr.HasTranslation("en", "validation.missing"))
	assert.False(t, tr.HasTranslation("de", "greeting"))
}

func TestTranslatorResolve(t *testing.T) {
	tr := newTestTranslator(t)

	tests := map[string]string{
		"ru":          "ru",
		"ru_RU.UTF-8": "ru",
		"en-GB":       "en",
		"de":          "en",
		"":            "en",
		"C":           "en",
		"!!":          "en",
	}
	for in, want := range tests {
		assert.Equal(t, want, tr.Resolve(in), in)
	}

	t.Run("respects custom default", func(t *testing.T) {
		ruFirst := newTestTranslator(t, i18n.WithDefaultLanguage("ru-RU"))
		assert.Equal(t, "ru", ruFirst.DefaultLanguage())
		assert.Equal(t, "ru", ruFirst.Resolve("de"))
	})
}

func TestTranslatorMissingLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))

	tr := newTestTranslator(t,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	tr.T("en", "missing.key")

	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "missing.key")
}
