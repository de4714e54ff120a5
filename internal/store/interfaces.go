package store

import (
	"context"

	"github.com/webdev-team/access-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// AccessRepository is the persistence contract for the access-level
// resource. All calls are atomic from the caller's perspective; a missing
// row surfaces as [ErrAccessNotFound].
type AccessRepository interface {
	GetAccess(ctx context.Context, id int64) (models.Access, error)
	CreateAccess(ctx context.Context, newAccess models.NewAccess) (models.Access, error)
	UpdateAccess(ctx context.Context, id int64, partial models.PartialAccess) (models.Access, error)
	DeleteAccess(ctx context.Context, id int64) error
}

// GrantRepository is the persistence contract for the user-to-access grant
// resource. SearchGrants executes a predicate set built by the classifier;
// CheckAccess is a pure existence query that never errors on absence.
type GrantRepository interface {
	SearchGrants(ctx context.Context, grantSearch models.GrantSearch) ([]models.Grant, error)
	CheckAccess(ctx context.Context, userID, accessID int64) (bool, error)
	CreateGrant(ctx context.Context, newGrant models.NewGrant) (models.Grant, error)
	UpdateGrant(ctx context.Context, id int64, partial models.PartialGrant) (models.Grant, error)
	DeleteGrant(ctx context.Context, id int64) error
}
