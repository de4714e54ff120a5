package classify

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/webdev-team/access-server/internal/search"
	"github.com/webdev-team/access-server/models"
)

// Recognized query keys of the grant search endpoint.
const (
	searchKeyAccessID        = "access_id"
	searchKeyUserID          = "user_id"
	searchKeyPermissionLevel = "permission_level"
)

// Grant classifies a request against the user-to-access grant resource.
//
// Rules, in evaluation order:
//
//	GET    /                      → SearchGrants (query predicates)
//	GET    /{user_id}/{access_id} → CheckAccess
//	POST   /                      → CreateGrant (JSON body)
//	POST   /{id}                  → UpdateGrant (partial JSON body)
//	DELETE /{id}                  → DeleteGrant
//
// Anything else is ErrNoRouteMatched.
func Grant(method, path string, query url.Values, body io.Reader) (models.GrantRequest, error) {
	segs := segments(path)

	switch method {
	case http.MethodGet:
		if len(segs) == 0 {
			return searchGrants(query)
		}
		if len(segs) == 2 {
			userID, okUser := parseID(segs[0])
			accessID, okAccess := parseID(segs[1])
			if okUser && okAccess {
				return models.CheckAccess{UserID: userID, AccessID: accessID}, nil
			}
		}

	case http.MethodPost:
		if len(segs) == 0 {
			var newGrant models.NewGrant
			if err := decodeBody(body, &newGrant); err != nil {
				return nil, err
			}
			return models.CreateGrant{New: newGrant}, nil
		}
		if len(segs) == 1 {
			if id, ok := parseID(segs[0]); ok {
				var partial models.PartialGrant
				if err := decodeBody(body, &partial); err != nil {
					return nil, err
				}
				return models.UpdateGrant{ID: id, Partial: partial}, nil
			}
		}

	case http.MethodDelete:
		if len(segs) == 1 {
			if id, ok := parseID(segs[0]); ok {
				return models.DeleteGrant{ID: id}, nil
			}
		}
	}

	return nil, ErrNoRouteMatched
}

// searchGrants builds the predicate set for the list endpoint. Every key
// must be recognized; a single malformed value aborts the whole search, so
// no partial predicate set ever escapes. When a key is repeated, each value
// must parse and the last one wins.
func searchGrants(query url.Values) (models.GrantRequest, error) {
	grantSearch := models.GrantSearch{}

	for key, values := range query {
		for _, raw := range values {
			var err error

			switch key {
			case searchKeyAccessID:
				grantSearch.AccessID, err = search.Int64(raw)
			case searchKeyUserID:
				grantSearch.UserID, err = search.Int64(raw)
			case searchKeyPermissionLevel:
				grantSearch.PermissionLevel, err = search.NullableString(raw)
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnknownSearchKey, key)
			}

			if err != nil {
				return nil, err
			}
		}
	}

	return models.SearchGrants{Search: grantSearch}, nil
}
