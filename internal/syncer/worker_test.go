package syncer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/cad_state_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestWorker_SyncsPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockStateManager(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	calls := 0
	manager.EXPECT().
		SyncDetails(gomock.Any(), false).
		DoAndReturn(func(ctx context.Context, force bool) error {
			calls++
			if calls == 2 {
				close(done)
				cancel()
			}
			return nil
		}).
		MinTimes(2)

	NewWorker(manager, newTestLogger(), 5*time.Millisecond).Start(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sync worker did not tick")
	}
}

func TestWorker_TickLogsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockStateManager(ctrl)

	manager.EXPECT().SyncDetails(gomock.Any(), false).Return(errors.New("cad unavailable")).Times(1)

	NewWorker(manager, newTestLogger(), time.Minute).tick(context.Background())
}
