package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors mapped from the server's failure statuses. Callers match
// them with [errors.Is].
var (
	// ErrBadRequest corresponds to a 400 response: malformed body, bad
	// search value, or an unrecognized search key.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound corresponds to a 404 response: no such route or no such
	// entity.
	ErrNotFound = errors.New("not found")

	// ErrConflict corresponds to a 409 response: duplicate access name.
	ErrConflict = errors.New("conflict")

	// ErrServer corresponds to any 5xx response.
	ErrServer = errors.New("server error")
)

// mapHTTPError converts a non-2xx response into a sentinel error, or nil
// for a successful status.
func mapHTTPError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() < 300:
		return nil
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, resp.Status())
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Status())
	case resp.StatusCode() == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, resp.Status())
	default:
		return fmt.Errorf("%w: %s", ErrServer, resp.Status())
	}
}
