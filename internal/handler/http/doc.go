// Package http implements the HTTP transport layer of the access server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Requests are handed to the transport-agnostic classifier, executed by
// the service layer, and their typed outcomes encoded back onto the wire in
// this package. Cross-cutting concerns such as request tracing and access
// logging are handled here as well.
package http
