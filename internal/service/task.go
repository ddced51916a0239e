package service

import (
	"context"
	"time"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
	"github.com/BuzzLyutic/task-tracker-api/internal/repo"
)

const DefaultDueHours = 24

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if in.Tags == nil {
		in.Tags = []string{}
	}

	task, err := validateFull(in) // Валидация payload на корректность введенных данных
	if err != nil {
		return model.Task{}, err
	}

	task.CreatedAt = time.Now().UTC() // Выставляется один раз, update его не трогает
	return s.repo.Insert(ctx, task)
}

func (s *TaskService) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *TaskService) Get(ctx context.Context, id string) (model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, id string, in model.TaskInput) (model.Task, error) {
	if in.Tags == nil {
		// Update без tags сбрасывает их в пустой список - так себя
		// ведет исходный API, сохраняем контракт
		in.Tags = []string{}
	}

	changes, err := validatePartial(in)
	if err != nil {
		return model.Task{}, err
	}
	return s.repo.UpdateByID(ctx, id, changes)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *TaskService) Due(ctx context.Context, hours int) ([]model.Task, error) {
	return s.repo.FindDueWithin(ctx, hours)
}

func (s *TaskService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
