package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// syncCall - результат одной синхронизации, который могут ждать несколько вызывающих
type syncCall struct {
	done chan struct{}
	err  error
}

func newSyncCall() *syncCall {
	return &syncCall{done: make(chan struct{})}
}

func (c *syncCall) finish(err error) {
	c.err = err
	close(c.done)
}

func (c *syncCall) wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SyncDetails синхронизирует данные по текущему режиму. Если синхронизация уже
// выполняется, ставится в очередь ровно одна следующая; все последующие
// вызовы ждут её результата.
func (m *stateManager) SyncDetails(ctx context.Context, force bool) error {
	m.syncMu.Lock()
	if pending := m.pendingSync; pending != nil {
		if queued := m.queuedSync; queued != nil {
			m.syncMu.Unlock()
			syncCoalesced.Inc()
			return queued.wait(ctx)
		}
		queued := newSyncCall()
		m.queuedSync = queued
		m.syncMu.Unlock()
		go m.runQueuedSync(context.WithoutCancel(ctx), pending, queued)
		return queued.wait(ctx)
	}

	m.mu.RLock()
	mode := m.syncMode
	generation := m.generation
	m.mu.RUnlock()
	if mode.Kind == models.SyncModeNone {
		m.syncMu.Unlock()
		return nil
	}

	call := newSyncCall()
	m.pendingSync = call
	m.syncMu.Unlock()

	err := m.performSync(ctx, mode, generation, force)

	m.syncMu.Lock()
	if m.pendingSync == call {
		m.pendingSync = nil
	}
	m.syncMu.Unlock()
	call.finish(err)
	return err
}

// runQueuedSync дожидается текущей синхронизации и выполняет принудительную
func (m *stateManager) runQueuedSync(ctx context.Context, pending, queued *syncCall) {
	<-pending.done

	m.syncMu.Lock()
	if m.queuedSync == queued {
		m.queuedSync = nil
	}
	m.syncMu.Unlock()

	queued.finish(m.SyncDetails(ctx, true))
}

func (m *stateManager) performSync(ctx context.Context, mode models.SyncMode, generation uint64, force bool) error {
	ctx, span := tracer.Start(ctx, "StateManager.SyncDetails", trace.WithAttributes(
		attribute.String("sync.mode", string(mode.Kind)),
		attribute.Bool("sync.force", force),
	))
	defer span.End()

	log := m.logger.WithFields(logrus.Fields{
		"service": "cad_state",
		"method":  "SyncDetails",
		"mode":    mode.Kind,
		"force":   force,
	})

	var (
		snapshot *models.SyncSnapshot
		err      error
	)
	start := time.Now()

	switch mode.Kind {
	case models.SyncModePatrolGroup:
		m.mu.Lock()
		m.lastSyncBoundingBox = nil
		m.mu.Unlock()
		snapshot, err = m.api.SyncPatrolGroup(ctx, mode.PatrolGroup)

	case models.SyncModeMap:
		box := *mode.BoundingBox
		m.mu.Lock()
		if !force && !box.RequiresSyncFrom(m.lastSyncBoundingBox) {
			m.mu.Unlock()
			syncSkipped.Inc()
			log.Debug("Visible area barely changed, skipping sync")
			return nil
		}
		m.lastSyncBoundingBox = &box
		m.mu.Unlock()
		snapshot, err = m.api.SyncBoundingBox(ctx, box)

	default:
		return nil
	}

	if err != nil {
		syncDuration.WithLabelValues(string(mode.Kind), "error").Observe(time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "sync failed")
		log.WithError(err).Error("Failed to sync with CAD API")
		return fmt.Errorf("service: could not sync %s: %w", mode.Kind, err)
	}
	syncDuration.WithLabelValues(string(mode.Kind), "success").Observe(time.Since(start).Seconds())

	if !m.processSyncResponse(ctx, snapshot, generation) {
		log.Info("Session was cleared during sync, dropping response")
		return nil
	}

	log.WithFields(logrus.Fields{
		"incidents": len(snapshot.Incidents),
		"resources": len(snapshot.Resources),
	}).Info("Sync completed")
	return nil
}

// processSyncResponse заменяет снимок и перестраивает индексы. Ответ, полученный
// до очистки сессии, отбрасывается.
func (m *stateManager) processSyncResponse(ctx context.Context, snapshot *models.SyncSnapshot, generation uint64) bool {
	if snapshot == nil {
		snapshot = &models.SyncSnapshot{}
	}

	m.mu.Lock()
	if m.generation != generation {
		m.mu.Unlock()
		return false
	}
	m.applySnapshotLocked(snapshot.Clone())
	now := m.now()
	m.lastSyncTime = &now
	m.mu.Unlock()

	if err := m.cache.SetSnapshot(ctx, snapshot); err != nil {
		m.logger.WithError(err).Warn("Failed to cache sync snapshot")
	}

	m.publish(ctx, models.NewStateEvent(models.EventSyncChanged))
	return true
}

// applySnapshotLocked делает снимок текущим. Вызывается под m.mu.
func (m *stateManager) applySnapshotLocked(snapshot *models.SyncSnapshot) {
	m.lastSync = snapshot

	clear(m.incidentsByID)
	for _, incident := range snapshot.Incidents {
		if incident != nil {
			m.incidentsByID[incident.IncidentNumber] = incident
		}
	}

	clear(m.resourcesByID)
	for _, resource := range snapshot.Resources {
		if resource != nil {
			resource.Normalize()
			m.resourcesByID[resource.Callsign] = resource
		}
	}

	clear(m.officersByID)
	for _, officer := range snapshot.Officers {
		if officer != nil {
			m.officersByID[officer.ID] = officer
		}
	}
	// Текущий офицер всегда доступен по индексу
	if m.officer != nil {
		if _, ok := m.officersByID[m.officer.ID]; !ok {
			m.officersByID[m.officer.ID] = m.officer.Clone()
		}
	}

	clear(m.patrolsByID)
	for _, patrol := range snapshot.Patrols {
		if patrol != nil {
			m.patrolsByID[patrol.Identifier] = patrol
		}
	}

	clear(m.broadcastsByID)
	for _, broadcast := range snapshot.Broadcasts {
		if broadcast != nil {
			m.broadcastsByID[broadcast.Identifier] = broadcast
		}
	}

	indexedEntities.WithLabelValues("incident").Set(float64(len(m.incidentsByID)))
	indexedEntities.WithLabelValues("resource").Set(float64(len(m.resourcesByID)))
	indexedEntities.WithLabelValues("officer").Set(float64(len(m.officersByID)))
	indexedEntities.WithLabelValues("patrol").Set(float64(len(m.patrolsByID)))
	indexedEntities.WithLabelValues("broadcast").Set(float64(len(m.broadcastsByID)))
}
