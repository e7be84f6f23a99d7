package main

import (
	"context"
	"fmt"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/handler"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/server"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("lineage-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
