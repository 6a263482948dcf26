package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "task-list-service.com/task-list-service/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func assertSameTasks(t *testing.T, want, got []model.Task) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].Completed, got[i].Completed)
		assert.Equal(t, want[i].Deleted, got[i].Deleted)
		assert.Equal(t, want[i].Order, got[i].Order)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "createdAt of %s", want[i].ID)
		if want[i].DueDate == nil {
			assert.Nil(t, got[i].DueDate)
		} else {
			require.NotNil(t, got[i].DueDate)
			assert.True(t, want[i].DueDate.Equal(*got[i].DueDate), "dueDate of %s", want[i].ID)
		}
	}
}

func TestSQLiteRepository_SaveAndLoadKeepsCollectionOrder(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Initialize(ctx))

	want := sampleTasks()
	// Reverse ids so primary-key order differs from collection order.
	want[0], want[1] = want[1], want[0]
	require.NoError(t, repo.SaveAll(ctx, want))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assertSameTasks(t, want, got)
}

func TestSQLiteRepository_SaveReplacesCollection(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Initialize(ctx))

	require.NoError(t, repo.SaveAll(ctx, sampleTasks()))
	require.NoError(t, repo.SaveAll(ctx, sampleTasks()[1:]))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assertSameTasks(t, sampleTasks()[1:], got)

	require.NoError(t, repo.SaveAll(ctx, nil))
	got, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteRepository_FailedSaveRollsBack(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Initialize(ctx))

	want := sampleTasks()
	require.NoError(t, repo.SaveAll(ctx, want))

	duplicated := append(sampleTasks(), sampleTasks()[0])
	require.Error(t, repo.SaveAll(ctx, duplicated))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assertSameTasks(t, want, got)
}

func TestSQLiteRepository_InitializeIsIdempotent(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx))
	require.NoError(t, repo.SaveAll(ctx, sampleTasks()))
	require.NoError(t, repo.Initialize(ctx))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
