package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-list-service.com/task-list-service/internal/http/middlewares"
	"task-list-service.com/task-list-service/pkg/constants"
)

// routePrefixes lists the mount points of the task routes. /api/tasks is kept
// for clients of the first release.
var routePrefixes = []string{"/tasks", "/api/tasks"}

type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
}

// taskRoutes is the dispatch table, relative to a prefix. Static paths such
// as /order take precedence over /:id in echo's router.
func taskRoutes(h *Handler) []route {
	return []route{
		{http.MethodPost, "", h.CreateTask},
		{http.MethodGet, "", h.ListTasks(constants.ViewActive)},
		{http.MethodGet, "/completed", h.ListTasks(constants.ViewCompleted)},
		{http.MethodGet, "/not-completed", h.ListTasks(constants.ViewNotCompleted)},
		{http.MethodGet, "/deleted", h.ListTasks(constants.ViewDeleted)},
		{http.MethodPatch, "/order", h.ReorderTasks},
		{http.MethodGet, "/:id", h.GetTask},
		{http.MethodPatch, "/:id/status", h.ToggleStatus},
		{http.MethodPatch, "/:id", h.UpdateTask},
		{http.MethodDelete, "/:id", h.DeleteTask},
	}
}

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/health", h.Health)

	routes := taskRoutes(h)
	for _, prefix := range routePrefixes {
		g := e.Group(prefix)
		for _, r := range routes {
			g.Add(r.method, r.path, r.handler)
		}
	}
}
