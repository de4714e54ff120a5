package classify

import (
	"io"
	"net/http"

	"github.com/webdev-team/access-server/models"
)

// Access classifies a request against the access-level resource.
//
// Rules, in evaluation order:
//
//	GET    /{id}   → GetAccess
//	POST   /       → CreateAccess (JSON body {access_name})
//	POST   /{id}   → UpdateAccess (JSON body {access_name})
//	DELETE /{id}   → DeleteAccess
//
// Anything else is ErrNoRouteMatched.
func Access(method, path string, body io.Reader) (models.AccessRequest, error) {
	segs := segments(path)

	switch method {
	case http.MethodGet:
		if len(segs) == 1 {
			if id, ok := parseID(segs[0]); ok {
				return models.GetAccess{ID: id}, nil
			}
		}

	case http.MethodPost:
		if len(segs) == 0 {
			var newAccess models.NewAccess
			if err := decodeBody(body, &newAccess); err != nil {
				return nil, err
			}
			return models.CreateAccess{New: newAccess}, nil
		}
		if len(segs) == 1 {
			if id, ok := parseID(segs[0]); ok {
				var partial models.PartialAccess
				if err := decodeBody(body, &partial); err != nil {
					return nil, err
				}
				return models.UpdateAccess{ID: id, Partial: partial}, nil
			}
		}

	case http.MethodDelete:
		if len(segs) == 1 {
			if id, ok := parseID(segs[0]); ok {
				return models.DeleteAccess{ID: id}, nil
			}
		}
	}

	return nil, ErrNoRouteMatched
}
