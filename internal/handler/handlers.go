package handler

import (
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/handler/grpc"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/handler/http"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, buildInfo, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
