package bootstrap

import (
	"log/slog"

	"github.com/osse101/DragonKeeper_Go/internal/config"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
)

// SetupLogger installs the default logger from the app configuration.
// Source locations are only added in development.
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel)
	l.Info(LogMsgStartingDragonKeeper,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version,
		"storage", cfg.Storage)

	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"base_url", cfg.BaseURL,
		"smtp", cfg.SMTPEnabled())

	return l
}
