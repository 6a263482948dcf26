package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "task-list-service.com/task-list-service/internal/errors"
	model "task-list-service.com/task-list-service/pkg/models"
)

var _ TaskRepository = (*SQLiteRepository)(nil)

// taskRecord is the table row for a task. Position keeps the collection
// order, which is independent of the user-facing sort order.
type taskRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	Position    int    `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description *string
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	DueDate     *time.Time
	Deleted     bool `gorm:"not null;default:false"`
	SortOrder   int  `gorm:"column:sort_order;not null;default:0"`
}

func (taskRecord) TableName() string {
	return "tasks"
}

type SQLiteRepository struct {
	db        *gorm.DB
	batchSize int
}

func NewSQLiteRepository(db *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, batchSize: 100}
}

func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	var records []taskRecord
	if err := r.db.WithContext(ctx).Order("position asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: load tasks: %w", apperrors.ErrStorage, err)
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, rec.toModel())
	}
	return tasks, nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, tasks []model.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for i, task := range tasks {
		records = append(records, newTaskRecord(i, task))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&taskRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, r.batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("%w: save tasks: %w", apperrors.ErrStorage, err)
	}

	return nil
}

func (r *SQLiteRepository) Initialize(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&taskRecord{}); err != nil {
		return fmt.Errorf("%w: migrate tasks table: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func newTaskRecord(position int, task model.Task) taskRecord {
	return taskRecord{
		ID:          task.ID,
		Position:    position,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
		Deleted:     task.Deleted,
		SortOrder:   task.Order,
	}
}

func (rec taskRecord) toModel() model.Task {
	return model.Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Completed:   rec.Completed,
		CreatedAt:   rec.CreatedAt,
		DueDate:     rec.DueDate,
		Deleted:     rec.Deleted,
		Order:       rec.SortOrder,
	}
}
