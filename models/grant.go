package models

// Grant associates one user with one access level at an optional
// permission level. A user "has" an access level exactly when a Grant
// row with that (user_id, access_id) pair exists.
//
// AccessID and UserID reference entities owned by other parts of the
// backend; no foreign-key checks are performed in this layer.
type Grant struct {
	// GrantID is the internal unique identifier of the grant,
	// assigned by the database on creation.
	GrantID int64 `json:"grant_id"`

	// AccessID is the id of the granted access level.
	// Together with UserID it forms the identity of the grant and is
	// fixed at creation time.
	AccessID int64 `json:"access_id"`

	// UserID is the id of the user holding the access level.
	UserID int64 `json:"user_id"`

	// PermissionLevel optionally refines the grant (e.g. "read_only").
	// A nil value means the grant carries no permission level and is
	// stored as SQL NULL.
	PermissionLevel *string `json:"permission_level"`
}

// TableName returns the name of the database table
// associated with the Grant model.
func (g Grant) TableName() string {
	return "user_access"
}

// NewGrant is the creation payload for a grant.
type NewGrant struct {
	AccessID        int64   `json:"access_id"`
	UserID          int64   `json:"user_id"`
	PermissionLevel *string `json:"permission_level"`
}

// PartialGrant is the update payload for a grant.
//
// PermissionLevel is three-state: absent from the payload leaves the
// stored value unchanged, an explicit JSON null clears it, and a string
// sets it. AccessID and UserID are accepted for wire compatibility but
// a grant is never re-pointed to a different (user, access) pair after
// creation.
type PartialGrant struct {
	AccessID        int64          `json:"access_id"`
	UserID          int64          `json:"user_id"`
	PermissionLevel OptionalString `json:"permission_level"`
}
