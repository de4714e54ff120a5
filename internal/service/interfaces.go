package service

import (
	"context"

	"github.com/webdev-team/access-server/models"
)

// AccessService executes classified access-level operations against the
// persistence layer and produces the typed outcome the encoder consumes.
type AccessService interface {
	Execute(ctx context.Context, request models.AccessRequest) (models.AccessResponse, error)
}

// GrantService executes classified grant operations.
type GrantService interface {
	Execute(ctx context.Context, request models.GrantRequest) (models.GrantResponse, error)
}

// AppInfoService exposes application metadata such as the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
