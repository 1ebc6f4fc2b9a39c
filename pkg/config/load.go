package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally seeding it from a
// .env file first. Missing .env is not an error; deployments usually rely on
// real environment variables.
func Load(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found or specified, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"port", cfg.Server.Port,
		"customer_url", cfg.Services.CustomerURL,
		"account_url", cfg.Services.AccountURL,
		"card_url", cfg.Services.CardURL,
		"client_timeout", cfg.Services.HTTPTimeout,
	)
	return &cfg, nil
}
