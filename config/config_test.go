package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Config{})
	require.NoError(t, err)
	assert.Equal(t, "mmaModData", cfg.Component)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Tag().String())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DATAFIELDS_COMPONENT", "mmaModDataCustom")
	t.Setenv("DATAFIELDS_LANGUAGE", "es")
	t.Setenv("DATAFIELDS_LOG_LEVEL", "debug")

	cfg, err := Load(Config{})
	require.NoError(t, err)
	assert.Equal(t, "mmaModDataCustom", cfg.Component)
	assert.Equal(t, "es", cfg.Tag().String())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("DATAFIELDS_COMPONENT", "fromEnv")
	t.Setenv("DATAFIELDS_LANGUAGE", "de")

	cfg, err := Load(Config{Component: "fromCaller"})
	require.NoError(t, err)
	assert.Equal(t, "fromCaller", cfg.Component)
	assert.Equal(t, "de", cfg.Language)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		over Config
	}{
		{name: "bad language", over: Config{Language: "not a tag!"}},
		{name: "bad log level", over: Config{LogLevel: "chatty"}},
		{name: "blank component", env: map[string]string{"DATAFIELDS_COMPONENT": "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.over)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Component: "mmaModData", Language: "en", LogLevel: "warn"}
	logger := cfg.NewLogger(&buf)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `"component":"mmaModData"`)
}
