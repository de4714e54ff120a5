package models

// Access represents a named access level that can be granted to users.
// It is the unit of permission management: users are associated with an
// Access through a Grant row.
type Access struct {
	// ID is the internal unique identifier of the access level,
	// assigned by the database on creation.
	ID int64 `json:"id"`

	// AccessName is the human-readable name of the access level
	// (e.g. "admin", "mentor"). Uniqueness and non-emptiness are
	// enforced by the store, not by this layer.
	AccessName string `json:"access_name"`
}

// TableName returns the name of the database table
// associated with the Access model.
func (a Access) TableName() string {
	return "access"
}

// NewAccess is the creation payload for an access level.
// The ID is assigned by the store.
type NewAccess struct {
	AccessName string `json:"access_name"`
}

// PartialAccess is the update payload for an access level.
// Only the name can be changed after creation.
type PartialAccess struct {
	AccessName string `json:"access_name"`
}
