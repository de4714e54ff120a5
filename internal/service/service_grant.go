package service

import (
	"context"
	"fmt"

	"github.com/webdev-team/access-server/internal/logger"
	"github.com/webdev-team/access-server/internal/store"
	"github.com/webdev-team/access-server/models"
)

// grantService dispatches grant operations to the repository. Create and
// update hand the resulting row back to the client; delete is a no-content
// outcome; the check is a bare boolean.
type grantService struct {
	repository store.GrantRepository
	logger     *logger.Logger
}

// NewGrantService constructs a [GrantService] backed by the provided
// repository.
func NewGrantService(repository store.GrantRepository, logger *logger.Logger) GrantService {
	logger.Debug().Msg("creating grant service")
	return &grantService{
		repository: repository,
		logger:     logger,
	}
}

// Execute runs exactly one classified operation. Store errors pass through
// untouched so the transport layer can map sentinels to statuses.
func (s *grantService) Execute(ctx context.Context, request models.GrantRequest) (models.GrantResponse, error) {
	log := logger.FromContext(ctx)

	switch req := request.(type) {
	case models.SearchGrants:
		grants, err := s.repository.SearchGrants(ctx, req.Search)
		if err != nil {
			return nil, err
		}
		return models.ManyGrants{Grants: grants}, nil

	case models.CheckAccess:
		granted, err := s.repository.CheckAccess(ctx, req.UserID, req.AccessID)
		if err != nil {
			return nil, err
		}
		return models.AccessState{Granted: granted}, nil

	case models.CreateGrant:
		grant, err := s.repository.CreateGrant(ctx, req.New)
		if err != nil {
			return nil, err
		}
		return models.OneGrant{Grant: grant}, nil

	case models.UpdateGrant:
		grant, err := s.repository.UpdateGrant(ctx, req.ID, req.Partial)
		if err != nil {
			return nil, err
		}
		return models.OneGrant{Grant: grant}, nil

	case models.DeleteGrant:
		if err := s.repository.DeleteGrant(ctx, req.ID); err != nil {
			return nil, err
		}
		return models.NoContent{}, nil

	default:
		log.Error().Str("func", "*grantService.Execute").Type("request", request).Msg("unknown grant request variant")
		return nil, fmt.Errorf("%w: %T", ErrUnknownRequest, request)
	}
}
