package repo

import (
	"context"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

// TaskRepository определяет интерфейс для работы с хранилищем задач
type TaskRepository interface {
	Insert(ctx context.Context, t model.Task) (model.Task, error)
	FindAll(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (model.Task, error)
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (model.Task, error)
	DeleteByID(ctx context.Context, id string) error
	FindDueWithin(ctx context.Context, hours int) ([]model.Task, error)
	Count(ctx context.Context) (int64, error)
}
