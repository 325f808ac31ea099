package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UpdateCallsignStatus меняет статус текущего позывного. Finalise завершает
// текущий инцидент и переводит ресурс в On Air; переход на общий статус
// снимает текущий инцидент.
func (m *stateManager) UpdateCallsignStatus(ctx context.Context, change models.StatusChange) error {
	ctx, span := tracer.Start(ctx, "StateManager.UpdateCallsignStatus", trace.WithAttributes(
		attribute.String("status", string(change.Status)),
	))
	defer span.End()

	log := m.logger.WithFields(logrus.Fields{
		"service":         "cad_state",
		"method":          "UpdateCallsignStatus",
		"status":          change.Status,
		"incident_number": change.IncidentNumber,
	})

	if !change.Status.IsValid() {
		return ErrInvalidStatus
	}

	m.mu.RLock()
	bookOn := m.lastBookOn
	var (
		currentStatus   models.ResourceStatus
		currentIncident string
	)
	if resource := m.currentResourceLocked(); resource != nil {
		currentStatus = resource.Status
		currentIncident = resource.CurrentIncident
	}
	_, incidentKnown := m.incidentsByID[change.IncidentNumber]
	m.mu.RUnlock()

	if bookOn == nil {
		return ErrNotBookedOn
	}
	if change.IncidentNumber != "" && !incidentKnown {
		return ErrIncidentNotFound
	}
	if currentStatus != "" {
		allowed, requiresReason := currentStatus.CanChangeTo(change.Status)
		if !allowed {
			return ErrStatusUnchanged
		}
		if requiresReason && !change.Status.IsDuress() && strings.TrimSpace(change.Comments) == "" {
			return ErrReasonRequired
		}
	}
	if change.Status.IsIncidentStatus() && change.Status != models.StatusFinalise &&
		change.IncidentNumber == "" && currentIncident == "" {
		return ErrIncidentRequired
	}

	log = log.WithField("callsign", bookOn.Callsign)
	err := m.api.UpdateResourceStatus(ctx, models.StatusUpdateRequest{
		Callsign:         bookOn.Callsign,
		Status:           change.Status,
		IncidentNumber:   change.IncidentNumber,
		Comments:         change.Comments,
		LocationComments: change.LocationComments,
	})
	if err != nil {
		span.RecordError(err)
		log.WithError(err).Error("Failed to update callsign status")
		return fmt.Errorf("service: could not update callsign status: %w", err)
	}

	m.mu.Lock()
	newStatus := change.Status
	newIncident := change.IncidentNumber
	finalised := ""
	if newStatus == models.StatusFinalise {
		finalised = m.finaliseIncidentLocked()
		newStatus = models.StatusOnAir
		newIncident = ""
	}
	if resource := m.currentResourceLocked(); resource != nil {
		if resource.Status.IsChangingToGeneralStatus(newStatus) {
			if resource.CurrentIncident != "" {
				m.clearIncidentLocked(resource.CurrentIncident, resource)
			}
			newIncident = ""
		}
		resource.Status = newStatus
		if newIncident != "" && resource.CurrentIncident == "" {
			m.assignIncidentLocked(newIncident, resource)
		}
	}
	if finalised != "" {
		now := m.now()
		m.lastSyncTime = &now
	}
	m.mu.Unlock()

	statusChanges.WithLabelValues(string(change.Status)).Inc()

	if finalised != "" {
		event := models.NewStateEvent(models.EventSyncChanged)
		event.IncidentNumber = finalised
		m.publish(ctx, event)
	}
	event := models.NewStateEvent(models.EventCallsignChanged)
	event.Callsign = bookOn.Callsign
	event.IncidentNumber = change.IncidentNumber
	m.publish(ctx, event)

	log.WithField("finalised", finalised).Info("Callsign status updated")
	return nil
}

// finaliseIncidentLocked переводит текущий ресурс в On Air, снимает его
// инцидент со всех ресурсов и удаляет инцидент из снимка. Возвращает номер
// завершенного инцидента или пустую строку.
func (m *stateManager) finaliseIncidentLocked() string {
	resource := m.currentResourceLocked()
	if resource == nil {
		return ""
	}
	resource.Status = models.StatusOnAir

	incidentNumber := resource.CurrentIncident
	if incidentNumber == "" {
		return ""
	}
	for _, assigned := range m.resourcesForIncidentLocked(incidentNumber) {
		m.clearIncidentLocked(incidentNumber, assigned)
	}
	resource.ClearIncident(incidentNumber)
	m.removeIncidentLocked(incidentNumber)
	return incidentNumber
}
