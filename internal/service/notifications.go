package service

import (
	"context"

	"github.com/shenikar/cad_state_system/internal/models"
)

const (
	shiftEndingNotificationID    = "shiftEnding"
	shiftEndingNotificationTitle = "Shift Ending"
	shiftEndingNotificationBody  = "The shift time for your call sign has elapsed. Please terminate your shift or extend the end time."
)

// updateScheduledNotifications перепланирует напоминание о конце смены
func (m *stateManager) updateScheduledNotifications(ctx context.Context, bookOn *models.BookOnRequest) {
	if err := m.notifier.Remove(ctx, shiftEndingNotificationID); err != nil {
		m.logger.WithError(err).Warn("Failed to remove shift ending notification")
	}
	if bookOn == nil || bookOn.ShiftEnd == nil {
		return
	}

	notification := models.ScheduledNotification{
		ID:     shiftEndingNotificationID,
		Title:  shiftEndingNotificationTitle,
		Body:   shiftEndingNotificationBody,
		FireAt: bookOn.ShiftEnd.UTC(),
	}
	if err := m.notifier.Schedule(ctx, notification); err != nil {
		m.logger.WithError(err).WithField("fire_at", notification.FireAt).Warn("Failed to schedule shift ending notification")
	}
}
