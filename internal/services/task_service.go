package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "task-list-service.com/task-list-service/internal/errors"
	repository "task-list-service.com/task-list-service/internal/repositories"
	"task-list-service.com/task-list-service/pkg/constants"
	model "task-list-service.com/task-list-service/pkg/models"
)

// TaskService runs every operation as load, mutate, save over the whole
// collection. The mutex keeps concurrent requests from interleaving between
// the load and the save.
type TaskService struct {
	mu   sync.Mutex
	repo repository.TaskRepository
	now  func() time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
}

// UpdateTaskInput carries the fields to merge. Nil and empty values leave
// the stored field unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
		CreatedAt:   s.now().UTC(),
		DueDate:     in.DueDate,
		Deleted:     false,
		Order:       0,
	}

	tasks = append(tasks, task)
	if err := s.repo.SaveAll(ctx, tasks); err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(tasks, id)
	if idx < 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	task := tasks[idx]
	return &task, nil
}

// ListTasks returns the records matching view in stored order. The result is
// never nil.
func (s *TaskService) ListTasks(ctx context.Context, view constants.TaskView) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if view.Matches(task) {
			result = append(result, task)
		}
	}
	return result, nil
}

func (s *TaskService) ListActive(ctx context.Context) ([]model.Task, error) {
	return s.ListTasks(ctx, constants.ViewActive)
}

func (s *TaskService) ListCompleted(ctx context.Context) ([]model.Task, error) {
	return s.ListTasks(ctx, constants.ViewCompleted)
}

func (s *TaskService) ListNotCompleted(ctx context.Context) ([]model.Task, error) {
	return s.ListTasks(ctx, constants.ViewNotCompleted)
}

func (s *TaskService) ListDeleted(ctx context.Context) ([]model.Task, error) {
	return s.ListTasks(ctx, constants.ViewDeleted)
}

func (s *TaskService) ToggleStatus(ctx context.Context, id string) (*model.Task, error) {
	return s.mutate(ctx, id, func(task *model.Task) {
		task.Completed = !task.Completed
	})
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*model.Task, error) {
	return s.mutate(ctx, id, func(task *model.Task) {
		if in.Title != nil && *in.Title != "" {
			task.Title = *in.Title
		}
		if in.Description != nil && *in.Description != "" {
			description := *in.Description
			task.Description = &description
		}
		if in.DueDate != nil {
			dueDate := *in.DueDate
			task.DueDate = &dueDate
		}
	})
}

// SoftDelete flags the task as deleted. The record stays in the collection
// and can still be looked up by id.
func (s *TaskService) SoftDelete(ctx context.Context, id string) (*model.Task, error) {
	return s.mutate(ctx, id, func(task *model.Task) {
		task.Deleted = true
	})
}

// Reorder numbers the active tasks named in ids 0..k-1 following their
// current position in the collection, not the order of ids. Unknown and
// deleted ids are ignored; every other record keeps its order value.
func (s *TaskService) Reorder(ctx context.Context, ids []string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	ordered := make([]model.Task, 0, len(ids))
	for i := range tasks {
		if _, ok := wanted[tasks[i].ID]; !ok || tasks[i].Deleted {
			continue
		}
		tasks[i].Order = len(ordered)
		ordered = append(ordered, tasks[i])
	}

	if err := s.repo.SaveAll(ctx, tasks); err != nil {
		return nil, err
	}

	return ordered, nil
}

func (s *TaskService) mutate(ctx context.Context, id string, apply func(*model.Task)) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(tasks, id)
	if idx < 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	apply(&tasks[idx])

	if err := s.repo.SaveAll(ctx, tasks); err != nil {
		return nil, err
	}

	task := tasks[idx]
	return &task, nil
}

func indexOf(tasks []model.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
