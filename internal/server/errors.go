package server

import (
	"errors"
	"fmt"
	"net/http"
)

// JobNotFoundError indicates a status poll for an unknown job ID.
type JobNotFoundError struct {
	ID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job not found: %s", e.ID)
}

// BadRequestError indicates a malformed or invalid request body.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string {
	return e.Reason
}

// httpStatus maps typed errors to HTTP status codes.
func httpStatus(err error) int {
	var notFound *JobNotFoundError
	var badRequest *BadRequestError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
