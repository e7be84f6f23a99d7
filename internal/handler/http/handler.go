package http

import (
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
