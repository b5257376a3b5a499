// Package config loads todate settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/todate/pkg/datefmt"
	"github.com/dmitrymomot/todate/pkg/logger"
)

var (
	ErrInvalidLocale   = errors.New("config: invalid locale")
	ErrInvalidTimezone = errors.New("config: invalid timezone")
)

// Config holds settings shared by the CLI commands.
type Config struct {
	Locale          string        `env:"TODATE_LOCALE" envDefault:"en"`
	Timezone        string        `env:"TODATE_TIMEZONE" envDefault:"UTC"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LocaleTag parses the configured locale.
func (c Config) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(c.Locale))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, c.Locale, err)
	}
	return tag, nil
}

// Location loads the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(strings.TrimSpace(c.Timezone))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}

// FormatterOptions resolves locale and time zone into datefmt options.
func (c Config) FormatterOptions() ([]datefmt.Option, error) {
	tag, err := c.LocaleTag()
	if err != nil {
		return nil, err
	}
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return []datefmt.Option{datefmt.WithLocale(tag), datefmt.WithLocation(loc)}, nil
}

// Logger returns the logger settings.
func (c Config) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}
