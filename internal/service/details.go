package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/cad_state_system/internal/cadapi"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
)

// GetIncidentDetails возвращает полные данные инцидента: сначала из кеша,
// затем из CAD API. Одновременные запросы одного инцидента объединяются.
func (m *stateManager) GetIncidentDetails(ctx context.Context, incidentNumber string) (*models.Incident, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":         "cad_state",
		"method":          "GetIncidentDetails",
		"incident_number": incidentNumber,
	})

	cached, err := m.cache.GetIncident(ctx, incidentNumber)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from cache")
	} else if cached != nil {
		detailsCacheLookups.WithLabelValues("incident", "hit").Inc()
		return cached, nil
	}
	detailsCacheLookups.WithLabelValues("incident", "miss").Inc()

	v, err := m.fetchShared(ctx, "incident:"+incidentNumber, func(ctx context.Context) (any, error) {
		incident, err := m.api.IncidentDetails(ctx, incidentNumber)
		if err != nil {
			return nil, err
		}
		if err := m.cache.SetIncident(ctx, incident); err != nil {
			log.WithError(err).Warn("Failed to cache incident details")
		}
		return incident, nil
	})
	if err != nil {
		if errors.Is(err, cadapi.ErrNotFound) {
			return nil, ErrIncidentNotFound
		}
		log.WithError(err).Error("Failed to fetch incident details")
		return nil, fmt.Errorf("service: could not get incident details: %w", err)
	}
	return v.(*models.Incident).Clone(), nil
}

// GetResourceDetails возвращает полные данные ресурса
func (m *stateManager) GetResourceDetails(ctx context.Context, callsign string) (*models.Resource, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":  "cad_state",
		"method":   "GetResourceDetails",
		"callsign": callsign,
	})

	cached, err := m.cache.GetResource(ctx, callsign)
	if err != nil {
		log.WithError(err).Warn("Failed to get resource from cache")
	} else if cached != nil {
		detailsCacheLookups.WithLabelValues("resource", "hit").Inc()
		return cached, nil
	}
	detailsCacheLookups.WithLabelValues("resource", "miss").Inc()

	v, err := m.fetchShared(ctx, "resource:"+callsign, func(ctx context.Context) (any, error) {
		resource, err := m.api.ResourceDetails(ctx, callsign)
		if err != nil {
			return nil, err
		}
		if err := m.cache.SetResource(ctx, resource); err != nil {
			log.WithError(err).Warn("Failed to cache resource details")
		}
		return resource, nil
	})
	if err != nil {
		if errors.Is(err, cadapi.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		log.WithError(err).Error("Failed to fetch resource details")
		return nil, fmt.Errorf("service: could not get resource details: %w", err)
	}
	return v.(*models.Resource).Clone(), nil
}

// GetEmployeeDetails возвращает данные сотрудника. Пустой идентификатор
// означает текущего пользователя.
func (m *stateManager) GetEmployeeDetails(ctx context.Context, identifier string) (*models.Officer, error) {
	if identifier == "" {
		identifier = m.cfg.OfficerUsername
	}
	if identifier == "" {
		return nil, ErrNotLoggedIn
	}

	v, err := m.fetchShared(ctx, "employee:"+identifier, func(ctx context.Context) (any, error) {
		return m.api.EmployeeDetails(ctx, identifier)
	})
	if err != nil {
		if errors.Is(err, cadapi.ErrNotFound) {
			return nil, ErrOfficerNotFound
		}
		m.logger.WithFields(logrus.Fields{
			"service":    "cad_state",
			"method":     "GetEmployeeDetails",
			"identifier": identifier,
		}).WithError(err).Error("Failed to fetch employee details")
		return nil, fmt.Errorf("service: could not get employee details: %w", err)
	}
	return v.(*models.Officer).Clone(), nil
}

// fetchShared объединяет одновременные запросы с одним ключом. Запрос не
// зависит от отмены контекста первого вызывающего, каждый вызывающий ждет
// результат в пределах своего контекста.
func (m *stateManager) fetchShared(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	fetchCtx := context.WithoutCancel(ctx)
	ch := m.detailsGroup.DoChan(key, func() (any, error) {
		return fetch(fetchCtx)
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
