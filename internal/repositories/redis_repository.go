package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/rueidis"

	apperrors "task-list-service.com/task-list-service/internal/errors"
	model "task-list-service.com/task-list-service/pkg/models"
)

var _ TaskRepository = (*RedisRepository)(nil)

// RedisRepository stores the whole collection as one JSON value, so every
// save is a single SET.
type RedisRepository struct {
	client rueidis.Client
	key    string
}

func NewRedisRepository(client rueidis.Client, key string) *RedisRepository {
	return &RedisRepository{
		client: client,
		key:    key,
	}
}

func (r *RedisRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	cmd := r.client.B().Get().Key(r.key).Build()
	data, err := r.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, fmt.Errorf("%w: redis key %q does not exist", apperrors.ErrStorage, r.key)
		}
		return nil, fmt.Errorf("%w: get %q: %w", apperrors.ErrStorage, r.key, err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", apperrors.ErrStorage, r.key, err)
	}

	return tasks, nil
}

func (r *RedisRepository) SaveAll(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("%w: encode tasks: %w", apperrors.ErrStorage, err)
	}

	cmd := r.client.B().Set().Key(r.key).Value(string(data)).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("%w: set %q: %w", apperrors.ErrStorage, r.key, err)
	}

	return nil
}

func (r *RedisRepository) Initialize(ctx context.Context) error {
	cmd := r.client.B().Set().Key(r.key).Value("[]").Nx().Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil && !rueidis.IsRedisNil(err) {
		return fmt.Errorf("%w: initialize %q: %w", apperrors.ErrStorage, r.key, err)
	}
	return nil
}
