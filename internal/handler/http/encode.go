package http

import (
	"net/http"

	"github.com/webdev-team/access-server/internal/logger"
	"github.com/webdev-team/access-server/internal/utils"
	"github.com/webdev-team/access-server/models"
)

// writeAccessResponse maps an access-level outcome to the wire.
func writeAccessResponse(w http.ResponseWriter, r *http.Request, response models.AccessResponse) {
	log := logger.FromRequest(r)

	switch resp := response.(type) {
	case models.OneAccess:
		if _, err := utils.WriteJSON(w, resp.Access, http.StatusOK); err != nil {
			log.Err(err).Str("func", "writeAccessResponse").Msg("failed to encode access")
		}
	case models.NoContent:
		w.WriteHeader(http.StatusNoContent)
	default:
		log.Error().Str("func", "writeAccessResponse").Type("response", response).Msg("unknown access response variant")
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// writeGrantResponse maps a grant outcome to the wire. The access check
// encodes as the literal text "true" or "false" rather than a JSON boolean;
// clients depend on that exact shape.
func writeGrantResponse(w http.ResponseWriter, r *http.Request, response models.GrantResponse) {
	log := logger.FromRequest(r)

	switch resp := response.(type) {
	case models.ManyGrants:
		if _, err := utils.WriteJSON(w, resp.Grants, http.StatusOK); err != nil {
			log.Err(err).Str("func", "writeGrantResponse").Msg("failed to encode grants")
		}
	case models.OneGrant:
		if _, err := utils.WriteJSON(w, resp.Grant, http.StatusOK); err != nil {
			log.Err(err).Str("func", "writeGrantResponse").Msg("failed to encode grant")
		}
	case models.AccessState:
		w.Header().Set("Content-Type", "text/plain")
		body := "false"
		if resp.Granted {
			body = "true"
		}
		w.Write([]byte(body))
	case models.NoContent:
		w.WriteHeader(http.StatusNoContent)
	default:
		log.Error().Str("func", "writeGrantResponse").Type("response", response).Msg("unknown grant response variant")
		w.WriteHeader(http.StatusInternalServerError)
	}
}
