package errors

import "net/http"

// ErrStorage marks failures of the persistence collaborator. Repositories wrap
// the driver error with it so callers can still inspect the cause.
var ErrStorage = &Exception{
	Message:    "task storage unavailable",
	StatusCode: http.StatusInternalServerError,
}
