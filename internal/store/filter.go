package store

import "taskList/internal/models"

// Filter возвращает подпоследовательность коллекции по режиму.
// Неизвестный режим трактуется как all.
func (s *TaskStore) Filter(mode models.FilterMode) []models.Task {
	switch mode {
	case models.FilterPending:
		return s.PendingTasks()
	case models.FilterCompleted:
		return s.CompletedTasks()
	default:
		return s.Tasks()
	}
}

func ParseFilterMode(raw string) models.FilterMode {
	switch models.FilterMode(raw) {
	case models.FilterPending:
		return models.FilterPending
	case models.FilterCompleted:
		return models.FilterCompleted
	default:
		return models.FilterAll
	}
}
