package main

import (
	"fmt"
	"log/slog"

	"github.com/bankingsystem/services/infra"
	"github.com/bankingsystem/services/infra/initializer"
	accountrepo "github.com/bankingsystem/services/infra/repository/account"
	"github.com/bankingsystem/services/infra/repository/model"
	"github.com/bankingsystem/services/pkg/client"
	"github.com/bankingsystem/services/pkg/config"
	accountsvc "github.com/bankingsystem/services/pkg/service/account"
	"github.com/bankingsystem/services/webapi"
	accountapi "github.com/bankingsystem/services/webapi/account"
	"github.com/charmbracelet/log"
)

const defaultPort = 1501

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
	if err := db.AutoMigrate(&model.Account{}); err != nil {
		return fmt.Errorf("failed to migrate accounts table: %w", err)
	}

	customers := client.NewCustomerClient(cfg.Services.CustomerURL, cfg.Services.HTTPTimeout, logger)
	cards := client.NewCardClient(cfg.Services.CardURL, cfg.Services.HTTPTimeout, logger)
	svc := accountsvc.New(accountrepo.New(db), customers, cards, logger)

	app := webapi.New(cfg, "account-service")
	accountapi.Routes(app, svc)

	logger.Info("starting account service",
		"env", cfg.Env, "host", cfg.Server.Host, "port", cfg.Server.Port)
	return app.Listen(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
}
