package worker

import (
	"context"
	"time"

	"taskList/internal/logger"
	"taskList/internal/models"

	"go.uber.org/zap"
)

type CountsProvider interface {
	Counts() models.Counts
}

// StatsWorker периодически пишет в лог производные счётчики коллекции
type StatsWorker struct {
	store    CountsProvider
	interval time.Duration
}

func NewStatsWorker(store CountsProvider, interval *time.Duration) *StatsWorker {
	var intervalToSet time.Duration
	if interval == nil {
		intervalToSet = 1 * time.Minute
	} else {
		intervalToSet = *interval
	}

	return &StatsWorker{
		store:    store,
		interval: intervalToSet,
	}
}

func (w *StatsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.Report()
		case <-ctx.Done():
			logger.Info("Worker: Фоновая статистика останавливается")
			return
		}
	}
}

func (w *StatsWorker) Report() {
	counts := w.store.Counts()

	logger.Info("Worker: Состояние коллекции",
		zap.Int("total", counts.Total),
		zap.Int("pending", counts.Pending),
		zap.Int("completed", counts.Completed),
	)
}
