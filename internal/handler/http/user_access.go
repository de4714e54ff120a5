package http

import (
	"net/http"

	"github.com/webdev-team/access-server/internal/classify"
	"github.com/webdev-team/access-server/internal/logger"
)

// userAccess serves the whole user-to-access grant resource, including the
// search and check endpoints.
func (h *Handler) userAccess(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, err := classify.Grant(r.Method, r.URL.Path, r.URL.Query(), r.Body)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.userAccess").Msg("could not classify grant request")
		writeError(w, err)
		return
	}

	response, err := h.services.GrantService.Execute(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.userAccess").Msg("error executing grant request")
		writeError(w, err)
		return
	}

	writeGrantResponse(w, r, response)
}
