package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-list-service.com/task-list-service/internal/data_models"
	apperrors "task-list-service.com/task-list-service/internal/errors"
	"task-list-service.com/task-list-service/internal/http/validators"
	"task-list-service.com/task-list-service/internal/services"
	"task-list-service.com/task-list-service/pkg/constants"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	dueDate, err := validators.ParseDueDate(req.DueDate)
	if err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(view constants.TaskView) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, err := h.taskService.ListTasks(c.Request().Context(), view)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, tasks)
	}
}

func (h *Handler) ToggleStatus(c echo.Context) error {
	task, err := h.taskService.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	dueDate, err := validators.ParseDueDate(req.DueDate)
	if err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	task, err := h.taskService.SoftDelete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ReorderTasks(c echo.Context) error {
	var req dto.ReorderTasksRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateReorderTasksRequest(&req); err != nil {
		return err
	}

	tasks, err := h.taskService.Reorder(c.Request().Context(), req.IDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
