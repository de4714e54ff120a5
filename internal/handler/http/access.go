package http

import (
	"net/http"

	"github.com/webdev-team/access-server/internal/classify"
	"github.com/webdev-team/access-server/internal/logger"
)

// access serves the whole access-level resource. Classification of the
// method + path shape happens in the classify package; this handler only
// bridges the transport to it and encodes the outcome.
func (h *Handler) access(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, err := classify.Access(r.Method, r.URL.Path, r.Body)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.access").Msg("could not classify access request")
		writeError(w, err)
		return
	}

	response, err := h.services.AccessService.Execute(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.access").Msg("error executing access request")
		writeError(w, err)
		return
	}

	writeAccessResponse(w, r, response)
}
