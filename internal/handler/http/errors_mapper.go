package http

import (
	"errors"
	"net/http"

	"github.com/webdev-team/access-server/internal/classify"
	"github.com/webdev-team/access-server/internal/search"
	"github.com/webdev-team/access-server/internal/store"
)

var errorStatusMap = map[error]int{
	classify.ErrMissingBody:      http.StatusBadRequest,
	classify.ErrMalformedBody:    http.StatusBadRequest,
	classify.ErrUnknownSearchKey: http.StatusBadRequest,
	search.ErrBadFormat:          http.StatusBadRequest,

	classify.ErrNoRouteMatched: http.StatusNotFound,
	store.ErrAccessNotFound:    http.StatusNotFound,
	store.ErrGrantNotFound:     http.StatusNotFound,

	store.ErrDuplicateAccessName: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError ends the request with the status mapped from err. The body is
// the generic status text; error details stay in the logs.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}
