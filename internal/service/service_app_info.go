package service

import (
	"context"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version, falling back to the version baked
// into the binary.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	build.Version = version

	return &appInfoService{
		appVersion: version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
