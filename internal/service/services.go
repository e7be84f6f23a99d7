package service

import (
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) *Services {
	documents := NewDocumentService(storages.DocumentRepository, logger)

	return &Services{
		AuthService:     NewAuthService(cfg.Auth, logger),
		DocumentService: NewDocumentValidationService().Wrap(documents),
	}
}
