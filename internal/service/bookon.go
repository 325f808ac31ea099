package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
)

// BookOn выводит экипаж на смену под позывным
func (m *stateManager) BookOn(ctx context.Context, req *models.BookOnRequest) error {
	log := m.logger.WithFields(logrus.Fields{
		"service":  "cad_state",
		"method":   "BookOn",
		"callsign": req.Callsign,
	})
	log.Info("Booking on")

	if err := m.validate.Struct(req); err != nil {
		log.WithError(err).Warn("Invalid book on request")
		return fmt.Errorf("service: invalid book on request: %w", err)
	}
	if req.ShiftStart != nil && req.ShiftEnd != nil && !req.ShiftEnd.After(*req.ShiftStart) {
		return ErrInvalidShift
	}

	if err := m.api.BookOn(ctx, req); err != nil {
		log.WithError(err).Error("Failed to book on")
		return fmt.Errorf("service: could not book on: %w", err)
	}

	bookOn := req.Clone()
	employeeIDs := bookOn.EmployeeIDs()

	m.mu.Lock()
	now := m.now()
	m.lastSyncTime = &now
	m.lastBookOn = bookOn
	if resource := m.currentResourceLocked(); resource != nil {
		resource.OfficerIDs = slices.Clone(employeeIDs)
		resource.Equipment = slices.Clone(bookOn.Equipment)
		if resource.Status == models.StatusOffDuty {
			resource.Status = models.StatusOnAir
		}
	}
	// Пользователь вне экипажа не считается вышедшим на смену
	crewMismatch := m.officer != nil && !slices.Contains(employeeIDs, m.officer.ID)
	if crewMismatch {
		m.lastBookOn = nil
	}
	m.mu.Unlock()

	m.recordRecentIDs(ctx, models.RecentCallsigns, []string{bookOn.Callsign})
	m.recordRecentIDs(ctx, models.RecentOfficers, employeeIDs)
	m.didChangeBookOn(ctx, bookOn.Callsign)

	if crewMismatch {
		log.Warn("Logged in officer is not part of the crew, book on not kept")
		return ErrCrewMismatch
	}
	log.WithField("crew_size", len(employeeIDs)).Info("Booked on")
	return nil
}

// BookOff завершает смену текущего позывного
func (m *stateManager) BookOff(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"service": "cad_state",
		"method":  "BookOff",
	})

	m.mu.RLock()
	bookOn := m.lastBookOn
	var status models.ResourceStatus
	if resource := m.currentResourceLocked(); resource != nil {
		status = resource.Status
	}
	m.mu.RUnlock()

	if bookOn == nil {
		return ErrNotBookedOn
	}
	if status != "" && !status.CanTerminate() {
		log.WithField("status", status).Warn("Cannot terminate shift from current status")
		return ErrCannotTerminate
	}

	log = log.WithField("callsign", bookOn.Callsign)
	log.Info("Booking off")

	if err := m.api.BookOff(ctx, models.BookOffRequest{Callsign: bookOn.Callsign}); err != nil {
		log.WithError(err).Error("Failed to book off")
		return fmt.Errorf("service: could not book off: %w", err)
	}

	m.mu.Lock()
	if resource := m.resourcesByID[bookOn.Callsign]; resource != nil {
		resource.Status = models.StatusOffDuty
	}
	m.lastBookOn = nil
	m.mu.Unlock()

	m.didChangeBookOn(ctx, bookOn.Callsign)
	log.Info("Booked off")
	return nil
}

// didChangeBookOn сохраняет сессию, рассылает событие и обновляет уведомления
func (m *stateManager) didChangeBookOn(ctx context.Context, callsign string) {
	m.persistSession(ctx)

	event := models.NewStateEvent(models.EventBookOnChanged)
	event.Callsign = callsign
	m.publish(ctx, event)

	m.mu.RLock()
	var bookOn *models.BookOnRequest
	if m.lastBookOn != nil {
		bookOn = m.lastBookOn.Clone()
	}
	m.mu.RUnlock()
	m.updateScheduledNotifications(ctx, bookOn)
}

func (m *stateManager) recordRecentIDs(ctx context.Context, kind string, ids []string) {
	if len(ids) == 0 {
		return
	}
	if err := m.sessions.AddRecentIDs(ctx, kind, ids); err != nil {
		m.logger.WithError(err).WithField("kind", kind).Warn("Failed to record recently used ids")
	}
}
