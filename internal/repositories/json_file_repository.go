package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"

	apperrors "task-list-service.com/task-list-service/internal/errors"
	model "task-list-service.com/task-list-service/pkg/models"
)

var _ TaskRepository = (*JSONFileRepository)(nil)

// JSONFileRepository keeps the collection as a JSON array in a single file.
type JSONFileRepository struct {
	path string
	perm os.FileMode
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path, perm: 0o644}
}

func (r *JSONFileRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", apperrors.ErrStorage, r.path, err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", apperrors.ErrStorage, r.path, err)
	}

	return tasks, nil
}

func (r *JSONFileRepository) SaveAll(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode tasks: %w", apperrors.ErrStorage, err)
	}

	if err := renameio.WriteFile(r.path, data, r.perm); err != nil {
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrStorage, r.path, err)
	}

	return nil
}

func (r *JSONFileRepository) Initialize(ctx context.Context) error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %w", apperrors.ErrStorage, r.path, err)
	}

	return r.SaveAll(ctx, []model.Task{})
}
