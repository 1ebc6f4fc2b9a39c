package main

import (
	"fmt"
	"log/slog"

	"github.com/bankingsystem/services/infra"
	"github.com/bankingsystem/services/infra/initializer"
	customerrepo "github.com/bankingsystem/services/infra/repository/customer"
	"github.com/bankingsystem/services/infra/repository/model"
	"github.com/bankingsystem/services/pkg/client"
	"github.com/bankingsystem/services/pkg/config"
	customersvc "github.com/bankingsystem/services/pkg/service/customer"
	"github.com/bankingsystem/services/webapi"
	customerapi "github.com/bankingsystem/services/webapi/customer"
	"github.com/charmbracelet/log"
)

const defaultPort = 1500

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
	if err := db.AutoMigrate(&model.Customer{}); err != nil {
		return fmt.Errorf("failed to migrate customers table: %w", err)
	}

	accounts := client.NewAccountClient(cfg.Services.AccountURL, cfg.Services.HTTPTimeout, logger)
	svc := customersvc.New(customerrepo.New(db), accounts, logger)

	app := webapi.New(cfg, "customer-service")
	customerapi.Routes(app, svc)

	logger.Info("starting customer service",
		"env", cfg.Env, "host", cfg.Server.Host, "port", cfg.Server.Port)
	return app.Listen(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
}
