package handlers

import (
	"taskList/internal/models"
	"taskList/internal/store"
)

type TaskStore interface {
	Add(title, description string) (models.Task, bool)
	Update(id int64, options ...store.TaskOption) (models.Task, bool)
	Delete(id int64)
	ToggleComplete(id int64) (models.Task, bool)
	ClearCompleted()
	ClearAll()
	GetByID(id int64) (models.Task, bool)
	Filter(mode models.FilterMode) []models.Task
	Counts() models.Counts
}
