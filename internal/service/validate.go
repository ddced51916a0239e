package service

import (
	"errors"
	"strings"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

var ErrValidation = errors.New("validation error")

const (
	reasonRequired        = "Missing data for required field."
	reasonInvalidPriority = "Must be one of: low, medium, high."
	reasonInvalidStatus   = "Must be one of: TODO, IN_PROGRESS, COMPLETED."
	reasonInvalidDatetime = "Not a valid datetime."
)

// ValidationError несет ошибки по каждому полю. Либо валиден весь
// payload, либо не применяется ничего.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation error" }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// validateFull проверяет payload создания: все обязательные поля
// на месте, enum-значения и дата корректны. Tags к этому моменту
// уже дефолтнуты вызывающим.
func validateFull(in model.TaskInput) (model.Task, error) {
	fields := make(map[string]string)
	var t model.Task

	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		fields["title"] = reasonRequired
	} else {
		t.Title = *in.Title
	}

	if in.Description == nil || strings.TrimSpace(*in.Description) == "" {
		fields["description"] = reasonRequired
	} else {
		t.Description = *in.Description
	}

	switch {
	case in.Priority == nil:
		fields["priority"] = reasonRequired
	case !model.ValidPriority(*in.Priority):
		fields["priority"] = reasonInvalidPriority
	default:
		t.Priority = *in.Priority
	}

	switch {
	case in.Status == nil:
		fields["status"] = reasonRequired
	case !model.ValidStatus(*in.Status):
		fields["status"] = reasonInvalidStatus
	default:
		t.Status = *in.Status
	}

	if in.DueDate == nil {
		fields["due_date"] = reasonRequired
	} else if due, err := model.ParseTime(*in.DueDate); err != nil {
		fields["due_date"] = reasonInvalidDatetime
	} else {
		t.DueDate = due
	}

	t.Tags = in.Tags

	if len(fields) > 0 {
		return model.Task{}, &ValidationError{Fields: fields}
	}
	return t, nil
}

// validatePartial проверяет только присланные поля и возвращает
// нормализованную карту изменений. Tags присутствуют всегда -
// каждый update их перезаписывает.
func validatePartial(in model.TaskInput) (map[string]interface{}, error) {
	fields := make(map[string]string)
	changes := make(map[string]interface{})

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			fields["title"] = reasonRequired
		} else {
			changes["title"] = *in.Title
		}
	}

	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			fields["description"] = reasonRequired
		} else {
			changes["description"] = *in.Description
		}
	}

	if in.Priority != nil {
		if !model.ValidPriority(*in.Priority) {
			fields["priority"] = reasonInvalidPriority
		} else {
			changes["priority"] = *in.Priority
		}
	}

	if in.Status != nil {
		if !model.ValidStatus(*in.Status) {
			fields["status"] = reasonInvalidStatus
		} else {
			changes["status"] = *in.Status
		}
	}

	if in.DueDate != nil {
		if due, err := model.ParseTime(*in.DueDate); err != nil {
			fields["due_date"] = reasonInvalidDatetime
		} else {
			changes["due_date"] = due
		}
	}

	changes["tags"] = in.Tags

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return changes, nil
}
