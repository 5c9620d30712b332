package service

import (
	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/store"
	"github.com/MKhiriev/go-rest-kit/internal/validators"
	"github.com/MKhiriev/go-rest-kit/models"
)

type Services struct {
	AuthService    AuthService
	ArticleService ArticleService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.Auth, logger),
		ArticleService: NewArticleService(storages.ArticleRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
