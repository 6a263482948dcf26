package errors

import "net/http"

var ErrIDsRequired = &Exception{
	Message:    "ids must be an array of task ids",
	StatusCode: http.StatusBadRequest,
}
