// Command server runs the JSON API and the server-rendered web UI on
// their configured ports against one shared store.
package main

import (
	"log/slog"
	"os"

	"github.com/pennypilote/pennypilote/infra"
	infrarepo "github.com/pennypilote/pennypilote/infra/repository"
	"github.com/pennypilote/pennypilote/pkg/config"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
	"github.com/pennypilote/pennypilote/webapi"
	"github.com/pennypilote/pennypilote/webui"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	uow := infrarepo.NewUoW(db)
	ledgerSvc := ledger.New(uow)
	reportSvc := report.New(uow)

	apiApp := webapi.NewApp(ledgerSvc, reportSvc)
	uiApp := webui.NewApp(ledgerSvc, reportSvc)

	var g errgroup.Group
	g.Go(func() error {
		logger.Info("API listening", "port", cfg.HTTP.APIPort)
		return apiApp.Listen(":" + cfg.HTTP.APIPort)
	})
	g.Go(func() error {
		logger.Info("web UI listening", "port", cfg.HTTP.UIPort)
		return uiApp.Listen(":" + cfg.HTTP.UIPort)
	})
	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
