package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"wbrent/config"
	"wbrent/shared/constant"
	"wbrent/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// preserve restores the global logger state after the test.
func preserve(t *testing.T) {
	t.Helper()

	original, level, format := log.Logger, zerolog.GlobalLevel(), zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = format
	})
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	preserve(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	return &buf
}

func TestInitLogger(t *testing.T) {
	preserve(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	buf := capture(t)

	logger.ErrorWithStack(errors.New("reservation insert failed"))

	assert.Contains(t, buf.String(), "reservation insert failed")
	assert.Contains(t, buf.String(), "logger_test.go", "stack trace is attached")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		env   string
		want  zerolog.Level
	}{
		{level: "trace", want: zerolog.TraceLevel},
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "disabled", want: zerolog.Disabled},
		{level: "loud", env: constant.ServerEnvDevelopment, want: zerolog.DebugLevel},
		{level: "loud", env: constant.ServerEnvProduction, want: zerolog.InfoLevel},
		{level: "", env: constant.ServerEnvProduction, want: zerolog.InfoLevel},
		{level: "", want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.env, func(t *testing.T) {
			capture(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level
			cfg.Server.Env = tt.env

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestConfigureOutput(t *testing.T) {
	t.Run("json outside development", func(t *testing.T) {
		preserve(t)

		var buf bytes.Buffer

		cfg := &config.Config{}
		cfg.App.Name = "wb-rent"
		cfg.Server.Env = constant.ServerEnvProduction
		cfg.Server.LogLevel = "info"

		logger.ConfigureOutput(cfg, &buf)
		log.Info().Str("reservationId", "res-1").Msg("reservation created")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())

		assert.Equal(t, "wb-rent", line["service"])
		assert.Equal(t, constant.ServerEnvProduction, line["env"])
		assert.Equal(t, "res-1", line["reservationId"])
	})

	t.Run("development keeps the current writer", func(t *testing.T) {
		console := capture(t)

		var buf bytes.Buffer

		cfg := &config.Config{}
		cfg.Server.Env = constant.ServerEnvDevelopment

		logger.ConfigureOutput(cfg, &buf)
		log.Info().Msg("hello")

		assert.Empty(t, buf.String())
		assert.Contains(t, console.String(), "hello")
	})
}
