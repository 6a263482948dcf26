package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-list-service.com/task-list-service/internal/errors"
	model "task-list-service.com/task-list-service/pkg/models"
)

func sampleTasks() []model.Task {
	description := "with description"
	due := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	return []model.Task{
		{
			ID:          "11111111-1111-1111-1111-111111111111",
			Title:       "first",
			Description: &description,
			CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			DueDate:     &due,
			Order:       1,
		},
		{
			ID:        "22222222-2222-2222-2222-222222222222",
			Title:     "second",
			Completed: true,
			Deleted:   true,
			CreatedAt: time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestJSONFileRepository_LoadMissingFile(t *testing.T) {
	repo := NewJSONFileRepository(filepath.Join(t.TempDir(), "task.json"))

	_, err := repo.LoadAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestJSONFileRepository_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewJSONFileRepository(path).LoadAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestJSONFileRepository_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.json")
	repo := NewJSONFileRepository(path)
	ctx := context.Background()

	want := sampleTasks()
	require.NoError(t, repo.SaveAll(ctx, want))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.SaveAll(ctx, want[:1]))
	got, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestJSONFileRepository_ReadsExistingFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.json")
	raw := `[
  {
    "id": "a1",
    "title": "from node",
    "completed": false,
    "createdAt": "2024-05-01T12:00:00.000Z",
    "dueDate": "2024-06-01T00:00:00.000Z",
    "deleted": false,
    "order": 0
  },
  {
    "id": "b2",
    "title": "nulls",
    "description": null,
    "completed": true,
    "createdAt": "2024-05-01T12:00:00.000Z",
    "dueDate": null,
    "deleted": true,
    "order": 3
  }
]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	tasks, err := NewJSONFileRepository(path).LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "a1", tasks[0].ID)
	assert.Nil(t, tasks[0].Description)
	require.NotNil(t, tasks[0].DueDate)
	assert.True(t, tasks[0].DueDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))

	assert.Nil(t, tasks[1].Description)
	assert.Nil(t, tasks[1].DueDate)
	assert.True(t, tasks[1].Deleted)
	assert.Equal(t, 3, tasks[1].Order)
}

func TestJSONFileRepository_SaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, NewJSONFileRepository(path).SaveAll(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONFileRepository_InitializeKeepsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task.json")
	repo := NewJSONFileRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx))
	tasks, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	require.NoError(t, repo.SaveAll(ctx, sampleTasks()))
	require.NoError(t, repo.Initialize(ctx))

	tasks, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}
