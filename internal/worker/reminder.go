package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-tracker-api/internal/repo"
)

// Reminder периодически находит задачи с приближающимся дедлайном
// и пишет их в лог. Хранилище не мутирует.
type Reminder struct {
	repo     repo.TaskRepository
	logger   *zap.Logger
	interval time.Duration
	window   int // окно в часах, как в /tasks/due
	wg       sync.WaitGroup
	stop     chan struct{}
}

func NewReminder(repo repo.TaskRepository, logger *zap.Logger, interval time.Duration, windowHours int) *Reminder {
	return &Reminder{
		repo:     repo,
		logger:   logger,
		interval: interval,
		window:   windowHours,
		stop:     make(chan struct{}),
	}
}

func (rm *Reminder) Start(ctx context.Context) {
	rm.logger.Info("Starting due task reminder",
		zap.Duration("interval", rm.interval),
		zap.Int("window_hours", rm.window),
	)

	rm.wg.Add(1)
	go rm.run(ctx)
}

func (rm *Reminder) Stop() {
	rm.logger.Info("Stopping due task reminder...")
	close(rm.stop)
	rm.wg.Wait()
	rm.logger.Info("Due task reminder stopped")
}

func (rm *Reminder) run(ctx context.Context) {
	defer rm.wg.Done()

	ticker := time.NewTicker(rm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-rm.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := rm.remind(ctx); err != nil {
				rm.logger.Error("reminder pass failed", zap.Error(err))
			}
		}
	}
}

func (rm *Reminder) remind(ctx context.Context) error {
	tasks, err := rm.repo.FindDueWithin(ctx, rm.window)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		rm.logger.Info("Task due soon",
			zap.String("task_id", t.ID),
			zap.String("title", t.Title),
			zap.String("priority", t.Priority),
			zap.Time("due_date", t.DueDate),
		)
	}
	return nil
}
