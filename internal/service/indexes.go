package service

import (
	"slices"

	"github.com/shenikar/cad_state_system/internal/models"
)

// Все методы чтения возвращают копии: вызывающий не может изменить индексы.

func (m *stateManager) Incidents() []*models.Incident {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.lastSync == nil {
		return []*models.Incident{}
	}
	result := make([]*models.Incident, 0, len(m.lastSync.Incidents))
	for _, incident := range m.lastSync.Incidents {
		result = append(result, incident.Clone())
	}
	return result
}

func (m *stateManager) Incident(incidentNumber string) *models.Incident {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if incident, ok := m.incidentsByID[incidentNumber]; ok {
		return incident.Clone()
	}
	return nil
}

func (m *stateManager) Resources() []*models.Resource {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.lastSync == nil {
		return []*models.Resource{}
	}
	result := make([]*models.Resource, 0, len(m.lastSync.Resources))
	for _, resource := range m.lastSync.Resources {
		result = append(result, resource.Clone())
	}
	return result
}

func (m *stateManager) Resource(callsign string) *models.Resource {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if resource, ok := m.resourcesByID[callsign]; ok {
		return resource.Clone()
	}
	return nil
}

func (m *stateManager) Officers() []*models.Officer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.lastSync == nil {
		return []*models.Officer{}
	}
	result := make([]*models.Officer, 0, len(m.lastSync.Officers))
	for _, officer := range m.lastSync.Officers {
		result = append(result, officer.Clone())
	}
	return result
}

func (m *stateManager) Officer(id string) *models.Officer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if officer, ok := m.officersByID[id]; ok {
		return officer.Clone()
	}
	return nil
}

func (m *stateManager) Patrols() []*models.Patrol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.lastSync == nil {
		return []*models.Patrol{}
	}
	result := make([]*models.Patrol, 0, len(m.lastSync.Patrols))
	for _, patrol := range m.lastSync.Patrols {
		result = append(result, patrol.Clone())
	}
	return result
}

func (m *stateManager) Patrol(identifier string) *models.Patrol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if patrol, ok := m.patrolsByID[identifier]; ok {
		return patrol.Clone()
	}
	return nil
}

func (m *stateManager) Broadcasts() []*models.Broadcast {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.lastSync == nil {
		return []*models.Broadcast{}
	}
	result := make([]*models.Broadcast, 0, len(m.lastSync.Broadcasts))
	for _, broadcast := range m.lastSync.Broadcasts {
		result = append(result, broadcast.Clone())
	}
	return result
}

func (m *stateManager) Broadcast(identifier string) *models.Broadcast {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if broadcast, ok := m.broadcastsByID[identifier]; ok {
		return broadcast.Clone()
	}
	return nil
}

// ResourcesForIncident возвращает ресурсы, назначенные на инцидент, в порядке снимка
func (m *stateManager) ResourcesForIncident(incidentNumber string) []*models.Resource {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resources := m.resourcesForIncidentLocked(incidentNumber)
	result := make([]*models.Resource, 0, len(resources))
	for _, resource := range resources {
		result = append(result, resource.Clone())
	}
	return result
}

// IncidentForResource возвращает текущий инцидент ресурса, если он есть в снимке
func (m *stateManager) IncidentForResource(callsign string) *models.Incident {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if incident := m.incidentForResourceLocked(callsign); incident != nil {
		return incident.Clone()
	}
	return nil
}

// OfficersForResource возвращает известных офицеров экипажа ресурса
func (m *stateManager) OfficersForResource(callsign string) []*models.Officer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resource, ok := m.resourcesByID[callsign]
	if !ok {
		return []*models.Officer{}
	}
	result := make([]*models.Officer, 0, len(resource.OfficerIDs))
	for _, id := range resource.OfficerIDs {
		if officer, ok := m.officersByID[id]; ok {
			result = append(result, officer.Clone())
		}
	}
	return result
}

// resourcesForIncidentLocked ищет ресурсы по assignedIncidents в порядке снимка
func (m *stateManager) resourcesForIncidentLocked(incidentNumber string) []*models.Resource {
	if m.lastSync == nil {
		return nil
	}
	var resources []*models.Resource
	for _, resource := range m.lastSync.Resources {
		if resource != nil && slices.Contains(resource.AssignedIncidents, incidentNumber) {
			resources = append(resources, resource)
		}
	}
	return resources
}

func (m *stateManager) incidentForResourceLocked(callsign string) *models.Incident {
	resource, ok := m.resourcesByID[callsign]
	if !ok || resource.CurrentIncident == "" {
		return nil
	}
	return m.incidentsByID[resource.CurrentIncident]
}

// currentResourceLocked возвращает ресурс, под которым пользователь на смене
func (m *stateManager) currentResourceLocked() *models.Resource {
	if m.lastBookOn == nil {
		return nil
	}
	return m.resourcesByID[m.lastBookOn.Callsign]
}

func (m *stateManager) currentIncidentLocked() *models.Incident {
	if m.lastBookOn == nil {
		return nil
	}
	return m.incidentForResourceLocked(m.lastBookOn.Callsign)
}

// clearIncidentLocked снимает инцидент с ресурса с обеих сторон связи
func (m *stateManager) clearIncidentLocked(incidentNumber string, resource *models.Resource) {
	resource.ClearIncident(incidentNumber)
	if incident, ok := m.incidentsByID[incidentNumber]; ok {
		incident.ResourceCallsigns = slices.DeleteFunc(incident.ResourceCallsigns, func(callsign string) bool {
			return callsign == resource.Callsign
		})
	}
}

// assignIncidentLocked назначает инцидент ресурсу и поднимает ресурс в начало списка
func (m *stateManager) assignIncidentLocked(incidentNumber string, resource *models.Resource) {
	resource.AssignIncident(incidentNumber)
	if incident, ok := m.incidentsByID[incidentNumber]; ok {
		if !slices.Contains(incident.ResourceCallsigns, resource.Callsign) {
			incident.ResourceCallsigns = append(incident.ResourceCallsigns, resource.Callsign)
		}
	}
	if m.lastSync == nil {
		return
	}
	if idx := slices.Index(m.lastSync.Resources, resource); idx > 0 {
		m.lastSync.Resources = slices.Delete(m.lastSync.Resources, idx, idx+1)
		m.lastSync.Resources = slices.Insert(m.lastSync.Resources, 0, resource)
	}
}

// removeIncidentLocked удаляет инцидент из снимка и индекса
func (m *stateManager) removeIncidentLocked(incidentNumber string) {
	delete(m.incidentsByID, incidentNumber)
	if m.lastSync == nil {
		return
	}
	m.lastSync.Incidents = slices.DeleteFunc(m.lastSync.Incidents, func(incident *models.Incident) bool {
		return incident.IncidentNumber == incidentNumber
	})
}
