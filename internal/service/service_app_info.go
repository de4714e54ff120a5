package service

import (
	"context"

	"github.com/webdev-team/access-server/internal/config"
	"github.com/webdev-team/access-server/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
