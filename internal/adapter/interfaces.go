package adapter

import (
	"context"

	"github.com/webdev-team/access-server/models"
)

// AccessClient is the typed client for the access server's REST API. It
// mirrors the server's operation set one-to-one, including the plain-text
// boolean shape of the access check.
type AccessClient interface {
	GetAccess(ctx context.Context, id int64) (models.Access, error)
	CreateAccess(ctx context.Context, newAccess models.NewAccess) error
	UpdateAccess(ctx context.Context, id int64, partial models.PartialAccess) error
	DeleteAccess(ctx context.Context, id int64) error

	SearchGrants(ctx context.Context, query GrantQuery) ([]models.Grant, error)
	CheckAccess(ctx context.Context, userID, accessID int64) (bool, error)
	CreateGrant(ctx context.Context, newGrant models.NewGrant) (models.Grant, error)
	UpdateGrant(ctx context.Context, id int64, partial models.PartialGrant) (models.Grant, error)
	DeleteGrant(ctx context.Context, id int64) error
}
