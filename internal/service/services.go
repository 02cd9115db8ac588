package service

import (
	"time"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/store"
	"github.com/MKhiriev/threadboard/internal/utils"
	"github.com/MKhiriev/threadboard/models"
)

type Services struct {
	AccountService AccountService
	SessionService SessionService
	ThreadService  ThreadService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountService: NewAccountService(storages.AccountRepository, cfg.App, logger),
		SessionService: NewSessionService(storages.SessionRepository, utils.NewUUIDGenerator(), time.Now, cfg.App, logger),
		ThreadService:  NewThreadService(storages.ThreadRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
