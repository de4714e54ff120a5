package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/webdev-team/access-server/internal/logger"
	"github.com/webdev-team/access-server/models"
)

// grantRepository is the PostgreSQL-backed implementation of
// [GrantRepository]. It executes all grant operations against the
// "user_access" table using the embedded [*DB] connection.
type grantRepository struct {
	*DB
	logger *logger.Logger
}

// NewGrantRepository constructs a [GrantRepository] backed by the provided
// database connection and logger.
func NewGrantRepository(db *DB, logger *logger.Logger) GrantRepository {
	logger.Debug().Msg("creating grant repository")
	return &grantRepository{
		DB:     db,
		logger: logger,
	}
}

// SearchGrants executes a predicate set against the user_access table and
// returns the matching grants ordered by grant_id. An empty predicate set
// returns every grant.
func (r *grantRepository) SearchGrants(ctx context.Context, grantSearch models.GrantSearch) ([]models.Grant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchGrantsQuery(grantSearch)
	if err != nil {
		log.Err(err).Str("func", "*grantRepository.SearchGrants").Msg("failed to build search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*grantRepository.SearchGrants").Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grants := make([]models.Grant, 0, 16)

	for rows.Next() {
		grant, scanErr := scanGrant(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*grantRepository.SearchGrants").Msg("failed to scan grant row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		grants = append(grants, grant)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*grantRepository.SearchGrants").Msg("row iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grants, nil
}

// CheckAccess reports whether any grant row exists for the exact
// (user_id, access_id) pair. Absence of a row is false, never an error.
func (r *grantRepository) CheckAccess(ctx context.Context, userID, accessID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var granted bool
	row := r.DB.QueryRowContext(ctx, checkAccess, userID, accessID)

	if err := row.Scan(&granted); err != nil {
		log.Err(err).
			Str("func", "*grantRepository.CheckAccess").
			Int64("user_id", userID).
			Int64("access_id", accessID).
			Msg("failed to execute existence query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return granted, nil
}

// CreateGrant persists a new grant and returns it with the server-assigned
// grant_id. A nil permission level is stored as SQL NULL.
func (r *grantRepository) CreateGrant(ctx context.Context, newGrant models.NewGrant) (models.Grant, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createGrant, newGrant.AccessID, newGrant.UserID, newGrant.PermissionLevel)

	grant, err := scanGrant(row)
	if err != nil {
		log.Err(err).
			Str("func", "*grantRepository.CreateGrant").
			Int64("access_id", newGrant.AccessID).
			Int64("user_id", newGrant.UserID).
			Msg("failed to insert grant")
		return models.Grant{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return grant, nil
}

// UpdateGrant applies a partial payload to an existing grant and returns the
// resulting row.
//
// Only the permission level is writable: absent from the payload leaves the
// stored value unchanged (the current row is fetched and returned), an
// explicit null clears it, a string sets it. AccessID and UserID are the
// fixed identity of the grant and are never re-pointed.
func (r *grantRepository) UpdateGrant(ctx context.Context, id int64, partial models.PartialGrant) (models.Grant, error) {
	log := logger.FromContext(ctx)

	var row *sql.Row
	if partial.PermissionLevel.Set {
		var level any
		if partial.PermissionLevel.Valid {
			level = partial.PermissionLevel.Value
		}
		row = r.DB.QueryRowContext(ctx, updateGrantPermission, level, id)
	} else {
		row = r.DB.QueryRowContext(ctx, getGrant, id)
	}

	grant, err := scanGrant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Grant{}, ErrGrantNotFound
		}
		log.Err(err).Str("func", "*grantRepository.UpdateGrant").Int64("grant_id", id).Msg("failed to update grant")
		return models.Grant{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return grant, nil
}

// DeleteGrant removes a grant by id. Deleting a non-existent id is
// [ErrGrantNotFound], not a silent success.
func (r *grantRepository) DeleteGrant(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteGrant, id)
	if err != nil {
		log.Err(err).Str("func", "*grantRepository.DeleteGrant").Int64("grant_id", id).Msg("failed to delete grant")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrGrantNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanGrant reads one grant row, converting a NULL permission_level into a
// nil pointer.
func scanGrant(row rowScanner) (models.Grant, error) {
	var grant models.Grant
	var level sql.NullString

	if err := row.Scan(&grant.GrantID, &grant.AccessID, &grant.UserID, &level); err != nil {
		return models.Grant{}, err
	}

	if level.Valid {
		grant.PermissionLevel = &level.String
	}

	return grant, nil
}
