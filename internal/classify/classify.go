// Package classify turns an untyped HTTP-shaped request (method, path,
// query, body) into exactly one typed operation, or rejects it.
//
// Classification is a pure function: no state is retained between calls and
// the same request always classifies identically. Route rules are evaluated
// in a fixed order per resource and the first structural match wins; an
// id-shaped path segment that does not parse as int64 is a non-match, not an
// error, so evaluation falls through to the next rule and ultimately to
// ErrNoRouteMatched.
package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Classification failures. ErrNoRouteMatched is a not-found condition; the
// others are format errors in the sense of the transport's 4xx mapping.
var (
	// ErrNoRouteMatched is returned when no rule matches the
	// method + path combination.
	ErrNoRouteMatched = errors.New("no route matched the request")

	// ErrMissingBody is returned when a rule requires a request body and
	// none was supplied.
	ErrMissingBody = errors.New("missing request body")

	// ErrMalformedBody is returned when a required body is present but is
	// not valid JSON for the expected payload.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrUnknownSearchKey is returned when the search endpoint receives a
	// query parameter outside the recognized set. Unknown keys are a hard
	// failure so a client typo cannot silently drop an intended filter.
	ErrUnknownSearchKey = errors.New("unrecognized search parameter")
)

// segments splits a resource-relative path into its non-empty segments.
// "/" and "" both classify as the resource root.
func segments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// parseID binds one path segment to an int64. A failed parse means the
// enclosing rule does not match.
func parseID(seg string) (int64, bool) {
	id, err := strconv.ParseInt(seg, 10, 64)
	return id, err == nil
}

// decodeBody decodes a required JSON body into dst. A nil body is
// ErrMissingBody; anything undecodable is ErrMalformedBody.
func decodeBody(body io.Reader, dst any) error {
	if body == nil {
		return ErrMissingBody
	}
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}
