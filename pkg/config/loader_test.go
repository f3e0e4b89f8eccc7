package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/burger/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"BURGER_DEFAULT_NAME" envDefault:"burger"`
	Buns  int    `env:"BURGER_DEFAULT_BUNS" envDefault:"2"`
	Debug bool   `env:"BURGER_DEFAULT_DEBUG" envDefault:"true"`
}

type successConfig struct {
	Name  string `env:"BURGER_SUCCESS_NAME" envDefault:"burger"`
	Buns  int    `env:"BURGER_SUCCESS_BUNS" envDefault:"2"`
	Debug bool   `env:"BURGER_SUCCESS_DEBUG" envDefault:"true"`
}

type cachedConfig struct {
	Name string `env:"BURGER_CACHED_NAME" envDefault:"burger"`
}

type requiredConfig struct {
	Required string `env:"BURGER_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Name     string   `env:"BURGER_TEST_NAME"`
	Buns     int      `env:"BURGER_TEST_BUNS"`
	Sauces   []string `env:"BURGER_TEST_SAUCES" envSeparator:","`
	Priority string   `env:"BURGER_TEST_PRIORITY"`
	Extra    string   `env:"BURGER_TEST_EXTRA"`
}

func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

var fileKeys = []string{
	"BURGER_TEST_NAME",
	"BURGER_TEST_BUNS",
	"BURGER_TEST_SAUCES",
	"BURGER_TEST_PRIORITY",
	"BURGER_TEST_EXTRA",
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("BURGER_SUCCESS_NAME", "double")
	t.Setenv("BURGER_SUCCESS_BUNS", "3")
	t.Setenv("BURGER_SUCCESS_DEBUG", "false")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "double", cfg.Name)
	assert.Equal(t, 3, cfg.Buns)
	assert.False(t, cfg.Debug)
}

func TestLoad_DefaultValues(t *testing.T) {
	unsetAfter(t, "BURGER_DEFAULT_NAME", "BURGER_DEFAULT_BUNS", "BURGER_DEFAULT_DEBUG")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "burger", cfg.Name)
	assert.Equal(t, 2, cfg.Buns)
	assert.True(t, cfg.Debug)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("BURGER_CACHED_NAME", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("BURGER_CACHED_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	var reloaded cachedConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "second", reloaded.Name)
}

func TestLoad_MissingRequired(t *testing.T) {
	unsetAfter(t, "BURGER_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Run("succeeds once the variable is set", func(t *testing.T) {
		t.Setenv("BURGER_REQUIRED_VALUE", "present")

		var retry requiredConfig
		require.NoError(t, config.Load(&retry))
		assert.Equal(t, "present", retry.Required)
	})
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReloadConfig(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	unsetAfter(t, "BURGER_REQUIRED_VALUE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads a single file", func(t *testing.T) {
		unsetAfter(t, fileKeys...)
		config.ResetCache()

		require.NoError(t, config.LoadEnv("testdata/.env.base"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 3, cfg.Buns)
		assert.Equal(t, []string{"ketchup", "mayo"}, cfg.Sauces)
		assert.Equal(t, "base", cfg.Priority)
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		unsetAfter(t, fileKeys...)
		config.ResetCache()

		require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override", cfg.Priority)
		assert.Equal(t, "quoted value", cfg.Extra)
		assert.Equal(t, "from_file", cfg.Name)
	})

	t.Run("process environment wins", func(t *testing.T) {
		unsetAfter(t, fileKeys...)
		config.ResetCache()
		t.Setenv("BURGER_TEST_NAME", "from_env")

		require.NoError(t, config.LoadEnv("testdata/.env.base"))
		assert.Equal(t, "from_env", os.Getenv("BURGER_TEST_NAME"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/.env.missing")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

		assert.Panics(t, func() { config.MustLoadEnv("testdata/.env.missing") })
	})
}
