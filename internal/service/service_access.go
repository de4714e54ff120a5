package service

import (
	"context"
	"fmt"

	"github.com/webdev-team/access-server/internal/logger"
	"github.com/webdev-team/access-server/internal/store"
	"github.com/webdev-team/access-server/models"
)

// accessService dispatches access-level operations to the repository.
// Create, update and delete are no-content outcomes; only a lookup carries
// a payload back to the client.
type accessService struct {
	repository store.AccessRepository
	logger     *logger.Logger
}

// NewAccessService constructs an [AccessService] backed by the provided
// repository.
func NewAccessService(repository store.AccessRepository, logger *logger.Logger) AccessService {
	logger.Debug().Msg("creating access service")
	return &accessService{
		repository: repository,
		logger:     logger,
	}
}

// Execute runs exactly one classified operation. Store errors pass through
// untouched so the transport layer can map sentinels to statuses.
func (s *accessService) Execute(ctx context.Context, request models.AccessRequest) (models.AccessResponse, error) {
	log := logger.FromContext(ctx)

	switch req := request.(type) {
	case models.GetAccess:
		access, err := s.repository.GetAccess(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		return models.OneAccess{Access: access}, nil

	case models.CreateAccess:
		if _, err := s.repository.CreateAccess(ctx, req.New); err != nil {
			return nil, err
		}
		return models.NoContent{}, nil

	case models.UpdateAccess:
		if _, err := s.repository.UpdateAccess(ctx, req.ID, req.Partial); err != nil {
			return nil, err
		}
		return models.NoContent{}, nil

	case models.DeleteAccess:
		if err := s.repository.DeleteAccess(ctx, req.ID); err != nil {
			return nil, err
		}
		return models.NoContent{}, nil

	default:
		log.Error().Str("func", "*accessService.Execute").Type("request", request).Msg("unknown access request variant")
		return nil, fmt.Errorf("%w: %T", ErrUnknownRequest, request)
	}
}
