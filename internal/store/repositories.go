package store

import (
	"github.com/webdev-team/access-server/internal/logger"
)

// Repositories aggregates every repository backed by the shared database
// connection.
type Repositories struct {
	AccessRepository AccessRepository
	GrantRepository  GrantRepository
}

// NewRepositories wires all repositories to the provided connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		AccessRepository: NewAccessRepository(db, logger),
		GrantRepository:  NewGrantRepository(db, logger),
	}
}
