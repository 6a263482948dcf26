package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-list-service.com/task-list-service/internal/errors"
)

// ErrorHandler answers every failure with a plain-text body. Exceptions carry
// their own status; anything unrecognised becomes a 500 and is logged.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code    int
		message string
		httpErr *echo.HTTPError
	)
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	} else {
		code = apperrors.StatusCode(err)
		message = apperrors.Message(err)
	}

	if code >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.String(code, message)
	}
	if err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}
