package logger

import (
	"io"
	"os"
	"time"
	"wbrent/config"
	"wbrent/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger at trace level. It runs before the
// configuration is known, Configure replaces it afterwards.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Configure applies the configured level and, outside development, switches
// to JSON lines tagged with the service name and environment.
func Configure(cfg *config.Config) {
	ConfigureOutput(cfg, os.Stdout)
}

func ConfigureOutput(cfg *config.Config, out io.Writer) {
	if cfg.Server.Env != "" && cfg.Server.Env != constant.ServerEnvDevelopment {
		log.Logger = zerolog.New(out).With().
			Timestamp().
			Str("service", cfg.App.Name).
			Str("env", cfg.Server.Env).
			Logger()
	}

	SetLogLevel(cfg)
}

// SetLogLevel falls back to debug in development and info elsewhere when the
// level is missing or unknown.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = defaultLevel(cfg.Server.Env)
		log.Debug().Str("loglevel", level.String()).Msg("Environment has no valid log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

func defaultLevel(env string) zerolog.Level {
	if env == constant.ServerEnvDevelopment || env == "" {
		return zerolog.DebugLevel
	}

	return zerolog.InfoLevel
}
