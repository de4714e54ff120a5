package models

// AccessResponse is the outcome of executing an AccessRequest, prior to
// wire encoding. It is consumed exactly once by the response encoder.
type AccessResponse interface {
	isAccessResponse()
}

// GrantResponse is the outcome of executing a GrantRequest.
type GrantResponse interface {
	isGrantResponse()
}

// OneAccess carries a single access level (status 200, JSON body).
type OneAccess struct {
	Access Access
}

// OneGrant carries a single grant (status 200, JSON body).
type OneGrant struct {
	Grant Grant
}

// ManyGrants carries an ordered sequence of grants as returned by the
// store; this layer imposes no ordering of its own.
type ManyGrants struct {
	Grants []Grant
}

// AccessState carries the boolean result of an access check. It encodes
// as the literal text "true" or "false", not as a JSON boolean.
type AccessState struct {
	Granted bool
}

// NoContent is the outcome of a successful create, update or delete that
// returns nothing (status 204, empty body). It serves both resources.
type NoContent struct{}

func (OneAccess) isAccessResponse() {}
func (NoContent) isAccessResponse() {}

func (OneGrant) isGrantResponse()    {}
func (ManyGrants) isGrantResponse()  {}
func (AccessState) isGrantResponse() {}
func (NoContent) isGrantResponse()   {}
