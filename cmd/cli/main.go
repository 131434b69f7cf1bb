// Command cli runs the interactive menu against the configured store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pennypilote/pennypilote/cli"
	"github.com/pennypilote/pennypilote/infra"
	infrarepo "github.com/pennypilote/pennypilote/infra/repository"
	"github.com/pennypilote/pennypilote/pkg/config"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
)

func main() {
	// The CLI owns stdout; keep structured logs out of the prompt flow.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to database:", err)
		os.Exit(1)
	}

	uow := infrarepo.NewUoW(db)
	app := cli.New(ledger.New(uow), report.New(uow), os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "cli error:", err)
		os.Exit(1)
	}
}
