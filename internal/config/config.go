// Package config reads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string `env:"ADDR" envDefault:":8080"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret string `env:"SESSION_SECRET,required"`
	CookieName    string `env:"SESSION_COOKIE" envDefault:"sbtc_session"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`

	// Storage selection is read separately by storage.FromEnv; these are
	// listed here so `env` validates them up front in s3 mode.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"local"`

	PaymentFailAll bool `env:"PAYMENT_FAIL_ALL" envDefault:"false"`

	StrictQuantityCeiling bool `env:"STRICT_QUANTITY_CEILING" envDefault:"false"`
}

// Load reads .env (when present) and parses the environment into Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
