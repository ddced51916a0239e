package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"time"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

// Порядок колонок фиксирован - на него завязаны потребители выгрузки
var csvHeader = []string{"id", "title", "description", "priority", "status", "due_date", "created_at", "tags"}

// ExportCSV выгружает все задачи в CSV. Список tags схлопывается
// в одно поле через запятую, экранирование - стандартное CSV.
func (s *TaskService) ExportCSV(ctx context.Context) (string, error) {
	tasks, err := s.repo.FindAll(ctx, model.TaskFilter{})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, t := range tasks {
		record := []string{
			t.ID,
			t.Title,
			t.Description,
			t.Priority,
			t.Status,
			t.DueDate.UTC().Format(time.RFC3339),
			t.CreatedAt.UTC().Format(time.RFC3339),
			strings.Join(t.Tags, ","),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}
