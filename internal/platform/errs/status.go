package errs

import (
	"errors"
	"net/http"
)

// HTTPStatus maps the error's kind onto the status the API replies with.
// Upstream statuses are passed through when they are client or server
// errors; anything else the target answered with becomes 502.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case InvalidInput:
		return http.StatusBadRequest
	case UnsupportedContent:
		return http.StatusUnsupportedMediaType
	case UpstreamStatus:
		if e.UpstreamStatus >= 400 && e.UpstreamStatus <= 599 {
			return e.UpstreamStatus
		}
		return http.StatusBadGateway
	case Unreachable, ParsingFailed, Unknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// StatusOf returns the HTTP status for any error, treating errors that are
// not an *AppError as unexpected.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}
