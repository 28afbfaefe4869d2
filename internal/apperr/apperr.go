// Package apperr is the error taxonomy the handler boundary maps to
// HTTP status codes. Messages are client-safe; the wrapped error is
// for logs only and never reaches a response body.
package apperr

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	Unauthorized Kind = iota
	NotFound
	InvalidID
	Validation
	Unavailable
)

type Error struct {
	Kind Kind
	Msg  string // safe for clients
	Err  error  // underlying cause, logs only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) StatusCode() int {
	switch e.Kind {
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case InvalidID, Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NotFoundf reports that no document matched, e.g. NotFoundf("brand").
func NotFoundf(resource string) *Error {
	return &Error{Kind: NotFound, Msg: resource + " not found"}
}

func InvalidIdentifier() *Error {
	return &Error{Kind: InvalidID, Msg: "invalid identifier"}
}

func Invalid(msg string) *Error {
	return &Error{Kind: Validation, Msg: msg}
}

func Unauthorizedf() *Error {
	return &Error{Kind: Unauthorized, Msg: "unauthorized"}
}

// StoreUnavailable wraps a driver fault. The raw error stays out of
// the client message.
func StoreUnavailable(err error) *Error {
	return &Error{Kind: Unavailable, Msg: "database unavailable", Err: err}
}
