package main

import (
	"fmt"
	"log/slog"

	"github.com/bankingsystem/services/infra"
	"github.com/bankingsystem/services/infra/initializer"
	cardrepo "github.com/bankingsystem/services/infra/repository/card"
	"github.com/bankingsystem/services/infra/repository/model"
	"github.com/bankingsystem/services/pkg/client"
	"github.com/bankingsystem/services/pkg/config"
	cardsvc "github.com/bankingsystem/services/pkg/service/card"
	"github.com/bankingsystem/services/webapi"
	cardapi "github.com/bankingsystem/services/webapi/card"
	"github.com/charmbracelet/log"
)

const defaultPort = 1502

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := initializer.SetupLogger(cfg.Log)
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&model.Card{}); err != nil {
		return fmt.Errorf("failed to migrate cards table: %w", err)
	}

	accounts := client.NewAccountClient(cfg.Services.AccountURL, cfg.Services.HTTPTimeout, logger)
	svc, err := cardsvc.New(cardrepo.New(db), accounts, cfg.Card, logger)
	if err != nil {
		return fmt.Errorf("failed to build card service: %w", err)
	}

	app := webapi.New(cfg, "card-service")
	cardapi.Routes(app, svc)

	logger.Info("starting card service",
		"env", cfg.Env, "host", cfg.Server.Host, "port", cfg.Server.Port)
	return app.Listen(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
}
