package service

import "errors"

// ErrUnknownRequest is returned when a service receives an operation
// variant it does not dispatch. It indicates a programming error in the
// classifier rather than a client mistake.
var ErrUnknownRequest = errors.New("unknown request variant")
