package server

import (
	"net/http"

	"github.com/jonathan/resume-tailor/internal/tailor"
)

// HTTPStatus returns the status code used to report a submission outcome.
// Validation failures are the caller's fault; any other failure came from
// the tailoring backend or the path to it.
func HTTPStatus(st tailor.State) int {
	f, ok := st.(tailor.Failed)
	if !ok {
		return http.StatusOK
	}
	switch f.Kind {
	case tailor.FailureValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
