package service

import (
	"context"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/models"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports the linker-injected build version when present
// and cfg.Version otherwise.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, log *logger.Logger) (AppInfoService, error) {
	version := build.VersionOr(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().
		Str("version", version).
		Str("build_date", build.BuildDate()).
		Str("build_commit", build.BuildCommit()).
		Msg("application info")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
