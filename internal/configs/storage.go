package config

import (
	"context"

	repository "task-list-service.com/task-list-service/internal/repositories"
)

// NewTaskRepository builds the repository selected by cfg.StorageDriver. The
// returned close func releases the backend's connection. The sqlite schema is
// migrated here; file and redis collections are left to `init`.
func NewTaskRepository(ctx context.Context, cfg Config) (repository.TaskRepository, func(), error) {
	switch cfg.StorageDriver {
	case StorageSQLite:
		db, err := NewDatabaseClient(cfg.DatabaseDSN, cfg.DatabaseDebug)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		repo := repository.NewSQLiteRepository(db)
		if err := repo.Initialize(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		return repo, closeFn, nil

	case StorageRedis:
		client, err := NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisRepository(client, cfg.RedisTasksKey), client.Close, nil

	default:
		return repository.NewJSONFileRepository(cfg.TasksFile), func() {}, nil
	}
}
