package service

import (
	"github.com/webdev-team/access-server/internal/config"
	"github.com/webdev-team/access-server/internal/logger"
	"github.com/webdev-team/access-server/internal/store"
)

// Services aggregates every domain service consumed by the transport layer.
type Services struct {
	AccessService  AccessService
	GrantService   GrantService
	AppInfoService AppInfoService
}

// NewServices wires all services to the provided repositories.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AccessService:  NewAccessService(repositories.AccessRepository, logger),
		GrantService:   NewGrantService(repositories.GrantRepository, logger),
		AppInfoService: NewAppInfoService(cfg.App, logger),
	}
}
