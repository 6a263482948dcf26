package repository

import (
	"context"

	model "task-list-service.com/task-list-service/pkg/models"
)

// TaskRepository persists the task collection as a whole. SaveAll replaces
// the stored collection atomically: either every record is committed or the
// previous state stays intact.
type TaskRepository interface {
	LoadAll(ctx context.Context) ([]model.Task, error)
	SaveAll(ctx context.Context, tasks []model.Task) error

	// Initialize creates an empty collection when none exists yet.
	Initialize(ctx context.Context) error
}
