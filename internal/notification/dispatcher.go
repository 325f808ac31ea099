package notification

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

import (
	"context"
	"time"

	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DueSource возвращает уведомления, время которых наступило. Schedule
// возвращает в расписание уведомление, которое не удалось разослать.
type DueSource interface {
	Due(ctx context.Context, now time.Time) ([]models.ScheduledNotification, error)
	Schedule(ctx context.Context, notification models.ScheduledNotification) error
}

// EventPublisher рассылает события состояния
type EventPublisher interface {
	Publish(ctx context.Context, event models.StateEvent) error
}

// Dispatcher периодически проверяет расписание и рассылает наступившие
// уведомления событием notification_due
type Dispatcher struct {
	source    DueSource
	publisher EventPublisher
	logger    *logrus.Logger
	interval  time.Duration
	now       func() time.Time
}

func NewDispatcher(source DueSource, publisher EventPublisher, logger *logrus.Logger, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		source:    source,
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
	}
}

// Start запускает горутину проверки расписания
func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.WithField("interval", d.interval).Info("Starting notification dispatcher...")
	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				d.logger.Info("Stopping notification dispatcher.")
				return
			case <-ticker.C:
				d.dispatch(ctx)
			}
		}
	}()
}

// dispatch рассылает наступившие уведомления и возвращает их количество
func (d *Dispatcher) dispatch(ctx context.Context) int {
	due, err := d.source.Due(ctx, d.now())
	if err != nil {
		d.logger.WithError(err).Error("Failed to get due notifications")
	}

	for _, notification := range due {
		event := models.NewStateEvent(models.EventNotificationDue)
		event.Title = notification.Title
		event.Body = notification.Body

		if err := d.publisher.Publish(ctx, event); err != nil {
			log := d.logger.WithFields(logrus.Fields{
				"notification_id": notification.ID,
				"title":           notification.Title,
				"body":            notification.Body,
			})
			log.WithError(err).Error("Failed to publish notification")
			// Уведомление уже забрано из расписания, возвращаем его на следующий тик
			if err := d.source.Schedule(ctx, notification); err != nil {
				log.WithError(err).Error("Failed to reschedule notification, it is lost")
			}
			continue
		}
		d.logger.WithField("notification_id", notification.ID).Info("Notification delivered")
	}
	return len(due)
}
