package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvLoaded guards the one-time .env load shared by all Load calls.
var defaultEnvLoaded sync.Once

// Load populates the provided configuration struct from environment
// variables based on `env` field tags.
//
// The default .env file is loaded once per process before the first parse;
// a missing file is not an error. Load performs no caching: configuration
// objects are expected to be constructed once at startup and passed to the
// components that need them.
//
// Example:
//
//	type AuthConfig struct {
//		JWTSecret string        `env:"JWT_SECRET,required"`
//		TokenTTL  time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"720h"`
//	}
//
//	var cfg AuthConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without, such as the
// token signing secret.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
