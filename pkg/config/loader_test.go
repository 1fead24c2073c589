package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/config"
)

type testConfig struct {
	Secret  string        `env:"TEST_CFG_SECRET,required"`
	Addr    string        `env:"TEST_CFG_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TEST_CFG_TIMEOUT" envDefault:"5s"`
}

func TestLoad(t *testing.T) {
	t.Run("loads values from environment", func(t *testing.T) {
		t.Setenv("TEST_CFG_SECRET", "super-secret")
		t.Setenv("TEST_CFG_ADDR", ":9090")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "super-secret", cfg.Secret)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("no caching between loads", func(t *testing.T) {
		t.Setenv("TEST_CFG_SECRET", "first")
		var first testConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CFG_SECRET", "second")
		var second testConfig
		require.NoError(t, config.Load(&second))

		assert.Equal(t, "first", first.Secret)
		assert.Equal(t, "second", second.Secret)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		var cfg testConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("succeeds when environment is complete", func(t *testing.T) {
		t.Setenv("TEST_CFG_SECRET", "super-secret")

		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "super-secret", cfg.Secret)
	})
}
