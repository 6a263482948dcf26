package constants

import model "task-list-service.com/task-list-service/pkg/models"

// TaskView selects which slice of the collection a listing returns.
type TaskView string

const (
	ViewActive       TaskView = "active"
	ViewCompleted    TaskView = "completed"
	ViewNotCompleted TaskView = "not-completed"
	ViewDeleted      TaskView = "deleted"
)

func (v TaskView) Matches(task model.Task) bool {
	switch v {
	case ViewActive:
		return !task.Deleted
	case ViewCompleted:
		return task.Completed && !task.Deleted
	case ViewNotCompleted:
		return !task.Completed && !task.Deleted
	case ViewDeleted:
		return task.Deleted
	default:
		return false
	}
}
