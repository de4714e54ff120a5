package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/webdev-team/access-server/internal/logger"
	"github.com/webdev-team/access-server/models"
)

// ErrDuplicateAccessName is returned when creating or renaming an access
// level collides with an existing name (unique constraint on access_name).
var ErrDuplicateAccessName = errors.New("access name already exists")

// accessRepository is the PostgreSQL-backed implementation of
// [AccessRepository]. It executes all access-level CRUD operations against
// the "access" table using the embedded [*DB] connection.
//
// Every method obtains a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accessRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccessRepository constructs an [AccessRepository] backed by the
// provided database connection and logger.
func NewAccessRepository(db *DB, logger *logger.Logger) AccessRepository {
	logger.Debug().Msg("creating access repository")
	return &accessRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAccess retrieves one access level by id.
//
// Error handling:
//   - empty result set → [ErrAccessNotFound]
//   - any other driver-level error → wrapped as [ErrExecutingQuery]
func (r *accessRepository) GetAccess(ctx context.Context, id int64) (models.Access, error) {
	log := logger.FromContext(ctx)

	var access models.Access
	row := r.DB.QueryRowContext(ctx, getAccess, id)

	if err := row.Scan(&access.ID, &access.AccessName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Access{}, ErrAccessNotFound
		}
		log.Err(err).Str("func", "*accessRepository.GetAccess").Int64("id", id).Msg("failed to scan access row")
		return models.Access{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return access, nil
}

// CreateAccess persists a new access level and returns it with the
// server-assigned id.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateAccessName]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *accessRepository) CreateAccess(ctx context.Context, newAccess models.NewAccess) (models.Access, error) {
	log := logger.FromContext(ctx)

	var access models.Access
	row := r.DB.QueryRowContext(ctx, createAccess, newAccess.AccessName)

	if err := row.Scan(&access.ID, &access.AccessName); err != nil {
		log.Err(err).Str("func", "*accessRepository.CreateAccess").Str("access_name", newAccess.AccessName).Msg("failed to insert access")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Access{}, ErrDuplicateAccessName
		default:
			return models.Access{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return access, nil
}

// UpdateAccess renames an existing access level and returns the updated row.
//
// Error handling mirrors [accessRepository.CreateAccess], with an empty
// RETURNING set mapped to [ErrAccessNotFound].
func (r *accessRepository) UpdateAccess(ctx context.Context, id int64, partial models.PartialAccess) (models.Access, error) {
	log := logger.FromContext(ctx)

	var access models.Access
	row := r.DB.QueryRowContext(ctx, updateAccess, partial.AccessName, id)

	if err := row.Scan(&access.ID, &access.AccessName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Access{}, ErrAccessNotFound
		}
		log.Err(err).Str("func", "*accessRepository.UpdateAccess").Int64("id", id).Msg("failed to update access")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Access{}, ErrDuplicateAccessName
		default:
			return models.Access{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return access, nil
}

// DeleteAccess removes an access level by id. Deleting a non-existent id is
// [ErrAccessNotFound], not a silent success.
func (r *accessRepository) DeleteAccess(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteAccess, id)
	if err != nil {
		log.Err(err).Str("func", "*accessRepository.DeleteAccess").Int64("id", id).Msg("failed to delete access")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccessNotFound
	}

	return nil
}
