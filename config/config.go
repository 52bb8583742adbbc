// Package config loads the settings of the data-entry field handlers from the environment.
//
// Variables (all prefixed with DATAFIELDS_):
//
//	COMPONENT  FileSession namespace of the data module (default "mmaModData")
//	LANGUAGE   BCP 47 tag used for messages (default "en")
//	LOG_LEVEL  zerolog level name (default "info")
package config

import (
	"io"
	"strings"

	"dario.cat/mergo"
	"github.com/Station-Manager/errors"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const EnvPrefix = "DATAFIELDS_"

const (
	ErrMsgEmptyComponent = "Component cannot be empty."
	ErrMsgBadLanguage    = "Language is not a valid BCP 47 tag"
	ErrMsgBadLogLevel    = "Unknown log level"
)

type Config struct {
	Component string `env:"COMPONENT" envDefault:"mmaModData"`
	Language  string `env:"LANGUAGE" envDefault:"en"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and lays the non-zero fields of overrides on top.
func Load(overrides Config) (*Config, error) {
	const op errors.Op = "config.Load"
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.New(op).Err(err)
	}
	if err := mergo.Merge(cfg, overrides, mergo.WithOverride); err != nil {
		return nil, errors.New(op).Err(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	const op errors.Op = "config.Config.Validate"
	if strings.TrimSpace(c.Component) == "" {
		return errors.New(op).Msg(ErrMsgEmptyComponent)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return errors.New(op).Errorf("%s: %q", ErrMsgBadLanguage, c.Language)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return errors.New(op).Errorf("%s: %q", ErrMsgBadLogLevel, c.LogLevel)
	}
	return nil
}

// Tag returns the parsed language, English when it cannot be parsed.
func (c *Config) Tag() language.Tag {
	t, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return t
}

// NewLogger builds a JSON logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("component", c.Component).Logger()
}
