package syncer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// DetailsSyncer выполняет синхронизацию по текущему режиму
type DetailsSyncer interface {
	SyncDetails(ctx context.Context, force bool) error
}

// Worker периодически обновляет данные CAD. Повторяющиеся вызовы объединяет
// сам StateManager, поэтому тик во время долгой синхронизации безопасен.
type Worker struct {
	syncer   DetailsSyncer
	logger   *logrus.Logger
	interval time.Duration
}

func NewWorker(syncer DetailsSyncer, logger *logrus.Logger, interval time.Duration) *Worker {
	return &Worker{
		syncer:   syncer,
		logger:   logger,
		interval: interval,
	}
}

// Start запускает горутину периодической синхронизации
func (w *Worker) Start(ctx context.Context) {
	w.logger.WithField("interval", w.interval).Info("Starting sync worker...")
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping sync worker.")
				return
			case <-ticker.C:
				w.tick(ctx)
			}
		}
	}()
}

func (w *Worker) tick(ctx context.Context) {
	if err := w.syncer.SyncDetails(ctx, false); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.WithError(err).Warn("Periodic sync failed")
	}
}
