package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"taskList/internal/config"
	"taskList/internal/handlers"
	"taskList/internal/logger"
	"taskList/internal/middleware"
	"taskList/internal/store"
	"taskList/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	store     *store.TaskStore
	worker    *worker.StatsWorker
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	a.store = store.NewTaskStore()

	if a.config.Worker.Enabled {
		interval := time.Duration(a.config.Worker.Interval)
		a.worker = worker.NewStatsWorker(a.store, &interval)
	}

	a.router = a.buildRouter()
	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: a.router,
	}

	return nil
}

func (a *App) buildRouter() *chi.Mux {
	taskHandler := handlers.NewTaskHandler(a.store)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(a.config.RateLimit.RPM))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.Cors.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetTasks)  // GET /tasks?filter=all|pending|completed
		r.Post("/", taskHandler.PostTask) // POST /tasks

		r.Post("/clear-completed", taskHandler.ClearCompleted) // POST /tasks/clear-completed
		r.Post("/clear-all", taskHandler.ClearAll)             // POST /tasks/clear-all
		r.Get("/counts", taskHandler.GetCounts)                // GET /tasks/counts

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", taskHandler.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /tasks/{id}

			r.Post("/toggle", taskHandler.ToggleTask) // POST /tasks/{id}/toggle
		})
	})

	r.Get("/health", taskHandler.HealthCheck)

	return r
}

func (a *App) Run(ctx context.Context) error {
	if a.worker != nil {
		go a.worker.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Сервер запущен: " + a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.runShutdowns()
		return fmt.Errorf("запуск сервера: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Остановка сервера...")
	err := a.server.Shutdown(shutdownCtx)
	a.runShutdowns()
	if err != nil {
		return fmt.Errorf("остановка сервера: %w", err)
	}
	return nil
}

func (a *App) runShutdowns() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}

// Router отдаёт собранный роутер, нужен в тестах
func (a *App) Router() *chi.Mux {
	return a.router
}
