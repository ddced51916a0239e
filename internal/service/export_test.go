package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

func TestTaskService_ExportCSV(t *testing.T) {
	due := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

	t.Run("header and tag flattening", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindAll", mock.Anything, model.TaskFilter{}).Return([]model.Task{
			{
				ID:          "507f1f77bcf86cd799439011",
				Title:       "Write report",
				Description: "Quarterly numbers",
				Priority:    model.PriorityHigh,
				Status:      model.StatusTodo,
				DueDate:     due,
				CreatedAt:   created,
				Tags:        []string{"a", "b"},
			},
		}, nil)

		service := NewTaskService(mockRepo)
		content, err := service.ExportCSV(context.Background())
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
		require.Len(t, lines, 2)

		assert.Equal(t, "id,title,description,priority,status,due_date,created_at,tags", lines[0])
		// Список tags схлопнут в одно поле и взят в кавычки из-за запятой
		assert.Contains(t, lines[1], `"a,b"`)
		assert.Contains(t, lines[1], "507f1f77bcf86cd799439011")
		assert.Contains(t, lines[1], "2025-06-01T10:00:00Z")
	})

	t.Run("empty store still renders the header", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindAll", mock.Anything, model.TaskFilter{}).Return([]model.Task{}, nil)

		service := NewTaskService(mockRepo)
		content, err := service.ExportCSV(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "id,title,description,priority,status,due_date,created_at,tags\n", content)
	})

	t.Run("embedded delimiter in title gets standard quoting", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindAll", mock.Anything, model.TaskFilter{}).Return([]model.Task{
			{
				ID:        "507f1f77bcf86cd799439012",
				Title:     "One, two",
				Priority:  model.PriorityLow,
				Status:    model.StatusCompleted,
				DueDate:   due,
				CreatedAt: created,
				Tags:      []string{},
			},
		}, nil)

		service := NewTaskService(mockRepo)
		content, err := service.ExportCSV(context.Background())
		require.NoError(t, err)

		assert.Contains(t, content, `"One, two"`)
	})
}
