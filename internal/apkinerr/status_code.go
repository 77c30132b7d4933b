// Package apkinerr resolves apkin's error kinds to HTTP status codes.
package apkinerr

import (
	"errors"
	"net/http"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/android"
)

type statusError struct {
	err    error
	status int
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

// HTTPStatusCodeError tags err with the status code it should be
// served with.
func HTTPStatusCodeError(err error, status int) error {
	if err == nil {
		return nil
	}

	return &statusError{err: err, status: status}
}

// HTTPStatusCode resolves the status code for err: a known error kind
// first, then an explicit tag, then 500. A missing icon is a missing
// resource, unparseable badging means the upload itself was bad, and
// a rename that would clobber is a conflict.
func HTTPStatusCode(err error) int {
	parseErr := &android.ParseError{}
	switch {
	case errors.Is(err, android.ErrIconUnavailable):
		return http.StatusNotFound
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apkin.ErrRenameConflict):
		return http.StatusConflict
	}

	serr := &statusError{}
	if errors.As(err, &serr) {
		return serr.status
	}

	return http.StatusInternalServerError
}
