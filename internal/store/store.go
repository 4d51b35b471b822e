package store

import (
	"strings"
	"sync"
	"time"

	"taskList/internal/models"
)

const firstID int64 = 1

type TaskStore struct {
	mtx    *sync.RWMutex
	tasks  []models.Task
	nextID int64
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		mtx:    &sync.RWMutex{},
		tasks:  []models.Task{},
		nextID: firstID,
	}
}

// Add создаёт задачу и добавляет её в конец коллекции.
// Пустой (после trim) заголовок — тихий no-op.
func (s *TaskStore) Add(title, description string) (models.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, false
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := time.Now()
	taskToAdd := models.Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++

	s.tasks = append(s.tasks, taskToAdd)
	return taskToAdd, true
}

// Update накладывает опции на найденную задачу.
// ID и CreatedAt не меняются, UpdatedAt обновляется.
func (s *TaskStore) Update(id int64, options ...TaskOption) (models.Task, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for ind := range s.tasks {
		if s.tasks[ind].ID != id {
			continue
		}

		updated := s.tasks[ind]
		for _, opt := range options {
			if opt == nil {
				continue
			}
			opt(&updated)
		}

		updated.ID = s.tasks[ind].ID
		updated.CreatedAt = s.tasks[ind].CreatedAt
		updated.UpdatedAt = time.Now()

		s.tasks[ind] = updated
		return updated, true
	}

	return models.Task{}, false
}

func (s *TaskStore) ToggleComplete(id int64) (models.Task, bool) {
	s.mtx.RLock()
	var completed bool
	found := false
	for ind := range s.tasks {
		if s.tasks[ind].ID == id {
			completed = s.tasks[ind].Completed
			found = true
			break
		}
	}
	s.mtx.RUnlock()

	if !found {
		return models.Task{}, false
	}

	return s.Update(id, WithCompleted(!completed))
}

// Delete удаляет одну задачу, порядок остальных сохраняется.
// Отсутствующий id — тихий no-op.
func (s *TaskStore) Delete(id int64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for ind := range s.tasks {
		if s.tasks[ind].ID == id {
			s.tasks = append(s.tasks[:ind], s.tasks[ind+1:]...)
			return
		}
	}
}

func (s *TaskStore) ClearCompleted() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}
	s.tasks = remaining
}

// ClearAll очищает коллекцию и сбрасывает счётчик id.
// После сброса нумерация начинается как в новом хранилище.
func (s *TaskStore) ClearAll() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = []models.Task{}
	s.nextID = firstID
}

func (s *TaskStore) GetByID(id int64) (models.Task, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for ind := range s.tasks {
		if s.tasks[ind].ID == id {
			return s.tasks[ind], true
		}
	}
	return models.Task{}, false
}

// Tasks возвращает копию коллекции в порядке добавления.
func (s *TaskStore) Tasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]models.Task, len(s.tasks))
	copy(res, s.tasks)
	return res
}

func (s *TaskStore) CompletedTasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []models.Task{}
	for _, t := range s.tasks {
		if t.Completed {
			res = append(res, t)
		}
	}
	return res
}

func (s *TaskStore) PendingTasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []models.Task{}
	for _, t := range s.tasks {
		if !t.Completed {
			res = append(res, t)
		}
	}
	return res
}

func (s *TaskStore) TotalTasks() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.tasks)
}

func (s *TaskStore) Counts() models.Counts {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	counts := models.Counts{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			counts.Completed++
		} else {
			counts.Pending++
		}
	}
	return counts
}
