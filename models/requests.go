package models

import (
	"github.com/webdev-team/access-server/internal/search"
)

// AccessRequest is the request-scoped tagged union of operations on the
// access-level resource. Exactly one variant is produced per classified
// request; a value never outlives the request that produced it.
type AccessRequest interface {
	isAccessRequest()
}

// GetAccess fetches one access level by id.
type GetAccess struct {
	ID int64
}

// CreateAccess creates an access level with a store-assigned id.
type CreateAccess struct {
	New NewAccess
}

// UpdateAccess renames an existing access level.
type UpdateAccess struct {
	ID      int64
	Partial PartialAccess
}

// DeleteAccess removes an access level by id.
type DeleteAccess struct {
	ID int64
}

func (GetAccess) isAccessRequest()    {}
func (CreateAccess) isAccessRequest() {}
func (UpdateAccess) isAccessRequest() {}
func (DeleteAccess) isAccessRequest() {}

// GrantSearch is the predicate set for the grant list endpoint. Each field
// is an independent predicate over one column; zero values mean no filter.
type GrantSearch struct {
	AccessID        search.Search[int64]
	UserID          search.Search[int64]
	PermissionLevel search.NullableSearch[string]
}

// GrantRequest is the request-scoped tagged union of operations on the
// user-to-access grant resource.
type GrantRequest interface {
	isGrantRequest()
}

// SearchGrants lists grants matching a predicate set.
type SearchGrants struct {
	Search GrantSearch
}

// CheckAccess asks whether any grant row exists for the exact
// (user_id, access_id) pair, regardless of permission level.
type CheckAccess struct {
	UserID   int64
	AccessID int64
}

// CreateGrant creates a grant with a store-assigned id.
type CreateGrant struct {
	New NewGrant
}

// UpdateGrant applies a partial payload to an existing grant.
type UpdateGrant struct {
	ID      int64
	Partial PartialGrant
}

// DeleteGrant removes a grant by id.
type DeleteGrant struct {
	ID int64
}

func (SearchGrants) isGrantRequest() {}
func (CheckAccess) isGrantRequest()  {}
func (CreateGrant) isGrantRequest()  {}
func (UpdateGrant) isGrantRequest()  {}
func (DeleteGrant) isGrantRequest()  {}
