package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/timeflux/internal/buildinfo"
	"github.com/dmitrijs2005/timeflux/internal/client/cli"
	"github.com/dmitrijs2005/timeflux/internal/client/config"
	"github.com/dmitrijs2005/timeflux/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "initialization failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
