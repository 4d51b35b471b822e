package store

import (
	"strings"

	"taskList/internal/models"
)

// TaskOption — частичное обновление задачи
type TaskOption func(*models.Task)

// WithTitle обрезает пробелы; пустой заголовок не применяется,
// чтобы задача не осталась без названия.
func WithTitle(title string) TaskOption {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	return func(task *models.Task) {
		task.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(task *models.Task) {
		task.Description = description
	}
}

func WithCompleted(completed bool) TaskOption {
	return func(task *models.Task) {
		task.Completed = completed
	}
}
