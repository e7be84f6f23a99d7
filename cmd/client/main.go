package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/client"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if cfg.App.Headless {
		fmt.Println(buildInfo)
	}

	log := logger.NewClientLogger("lineage-client", cfg.App.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
