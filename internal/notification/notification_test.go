package notification

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/shenikar/cad_state_system/internal/notification/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var dispatchNow = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func newTestDispatcher(t *testing.T) (*Dispatcher, *mocks.MockDueSource, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDueSource(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	dispatcher := NewDispatcher(source, publisher, logger, time.Second)
	dispatcher.now = func() time.Time { return dispatchNow }
	return dispatcher, source, publisher
}

func TestDispatch_PublishesDueNotifications(t *testing.T) {
	// Подготовка
	dispatcher, source, publisher := newTestDispatcher(t)
	due := []models.ScheduledNotification{
		{ID: "shiftEnding", Title: "Shift Ending", Body: "Please terminate your shift", FireAt: dispatchNow},
	}

	// Ожидания
	source.EXPECT().Due(gomock.Any(), dispatchNow).Return(due, nil).Times(1)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event models.StateEvent) error {
			assert.Equal(t, models.EventNotificationDue, event.Type)
			assert.Equal(t, "Shift Ending", event.Title)
			assert.Equal(t, "Please terminate your shift", event.Body)
			return nil
		}).
		Times(1)

	// Действие
	count := dispatcher.dispatch(context.Background())

	// Проверки
	assert.Equal(t, 1, count)
}

func TestDispatch_PublishErrorContinues(t *testing.T) {
	// Подготовка
	dispatcher, source, publisher := newTestDispatcher(t)
	due := []models.ScheduledNotification{{ID: "a"}, {ID: "b"}}

	// Ожидания
	source.EXPECT().Due(gomock.Any(), dispatchNow).Return(due, nil).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("hub busy")).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	// Неразосланное уведомление возвращается в расписание
	source.EXPECT().Schedule(gomock.Any(), due[0]).Return(nil).Times(1)

	// Действие
	count := dispatcher.dispatch(context.Background())

	// Проверки
	assert.Equal(t, 2, count)
}

func TestDispatch_RescheduleErrorIsLogged(t *testing.T) {
	// Подготовка
	dispatcher, source, publisher := newTestDispatcher(t)
	due := []models.ScheduledNotification{{ID: "shiftEnding", Title: "Shift Ending"}}

	// Ожидания
	source.EXPECT().Due(gomock.Any(), dispatchNow).Return(due, nil).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("hub busy")).Times(1)
	source.EXPECT().Schedule(gomock.Any(), due[0]).Return(errors.New("redis down")).Times(1)

	// Действие
	count := dispatcher.dispatch(context.Background())

	// Проверки
	assert.Equal(t, 1, count)
}

func TestDispatch_SourceError(t *testing.T) {
	dispatcher, source, _ := newTestDispatcher(t)

	source.EXPECT().Due(gomock.Any(), dispatchNow).Return(nil, errors.New("redis down")).Times(1)

	assert.Equal(t, 0, dispatcher.dispatch(context.Background()))
}

func TestRedisScheduler_ScheduleAndDue(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	scheduler := NewRedisScheduler(client)
	ctx := context.Background()

	require.NoError(t, scheduler.Schedule(ctx, models.ScheduledNotification{ID: "soon", Title: "Soon", FireAt: dispatchNow.Add(-time.Minute)}))
	require.NoError(t, scheduler.Schedule(ctx, models.ScheduledNotification{ID: "later", Title: "Later", FireAt: dispatchNow.Add(time.Hour)}))
	require.NoError(t, scheduler.Schedule(ctx, models.ScheduledNotification{ID: "removed", FireAt: dispatchNow.Add(-time.Minute)}))
	require.NoError(t, scheduler.Remove(ctx, "removed"))

	due, err := scheduler.Due(ctx, dispatchNow)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Soon", due[0].Title)

	// Повторный вызов ничего не возвращает
	due, err = scheduler.Due(ctx, dispatchNow)
	require.NoError(t, err)
	assert.Empty(t, due)
}
