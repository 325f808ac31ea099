package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List incidents
// @Description List incidents from the last sync in CAD order. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Incident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateManager.Incidents())
}

// @Summary Get incident
// @Description Get a synced incident by its number. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident number"
// @Success 200 {object} models.Incident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	incident := h.stateManager.Incident(c.Param("id"))
	if incident == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Get incident details
// @Description Fetch full incident details from CAD, served from cache when possible. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident number"
// @Success 200 {object} models.Incident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /incidents/{id}/details [get]
func (h *Handler) getIncidentDetails(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncidentDetails").WithField("id", id)

	incident, err := h.stateManager.GetIncidentDetails(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary List incident resources
// @Description List the resources assigned to an incident. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident number"
// @Success 200 {array} models.Resource
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/{id}/resources [get]
func (h *Handler) listIncidentResources(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(h.stateManager.ResourcesForIncident(c.Param("id"))))
}

// @Summary List resources
// @Description List resources (callsigns) from the last sync. Requires API key.
// @Tags Resources
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Resource
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateManager.Resources())
}

// @Summary Get resource
// @Description Get a synced resource by callsign. Requires API key.
// @Tags Resources
// @Produce json
// @Security ApiKeyAuth
// @Param callsign path string true "Callsign"
// @Success 200 {object} models.Resource
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Router /resources/{callsign} [get]
func (h *Handler) getResource(c *gin.Context) {
	resource := h.stateManager.Resource(c.Param("callsign"))
	if resource == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	c.JSON(http.StatusOK, resource)
}

// @Summary Get resource details
// @Description Fetch full resource details from CAD, served from cache when possible. Requires API key.
// @Tags Resources
// @Produce json
// @Security ApiKeyAuth
// @Param callsign path string true "Callsign"
// @Success 200 {object} models.Resource
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource not found"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /resources/{callsign}/details [get]
func (h *Handler) getResourceDetails(c *gin.Context) {
	callsign := c.Param("callsign")
	log := h.logger.WithField("method", "getResourceDetails").WithField("callsign", callsign)

	resource, err := h.stateManager.GetResourceDetails(c.Request.Context(), callsign)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// @Summary List resource officers
// @Description List the crew of a resource in crew order. Requires API key.
// @Tags Resources
// @Produce json
// @Security ApiKeyAuth
// @Param callsign path string true "Callsign"
// @Success 200 {array} models.Officer
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /resources/{callsign}/officers [get]
func (h *Handler) listResourceOfficers(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(h.stateManager.OfficersForResource(c.Param("callsign"))))
}

// @Summary Get resource incident
// @Description Get the current incident of a resource. Requires API key.
// @Tags Resources
// @Produce json
// @Security ApiKeyAuth
// @Param callsign path string true "Callsign"
// @Success 200 {object} models.Incident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resource has no current incident"
// @Router /resources/{callsign}/incident [get]
func (h *Handler) getResourceIncident(c *gin.Context) {
	incident := h.stateManager.IncidentForResource(c.Param("callsign"))
	if incident == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource has no current incident"})
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary List officers
// @Description List officers from the last sync. Requires API key.
// @Tags Officers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Officer
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /officers [get]
func (h *Handler) listOfficers(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateManager.Officers())
}

// @Summary Get officer
// @Description Get a synced officer by payroll id. Requires API key.
// @Tags Officers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Payroll id"
// @Success 200 {object} models.Officer
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Officer not found"
// @Router /officers/{id} [get]
func (h *Handler) getOfficer(c *gin.Context) {
	officer := h.stateManager.Officer(c.Param("id"))
	if officer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "officer not found"})
		return
	}
	c.JSON(http.StatusOK, officer)
}

// @Summary Get employee details
// @Description Fetch officer details from CAD by payroll id or username. Requires API key.
// @Tags Officers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Payroll id or username"
// @Success 200 {object} models.Officer
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Officer not found"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /officers/{id}/details [get]
func (h *Handler) getOfficerDetails(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getOfficerDetails").WithField("id", id)

	officer, err := h.stateManager.GetEmployeeDetails(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, officer)
}

// @Summary List patrols
// @Description List patrols from the last sync. Requires API key.
// @Tags Patrols
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Patrol
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /patrols [get]
func (h *Handler) listPatrols(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateManager.Patrols())
}

// @Summary Get patrol
// @Description Get a synced patrol by identifier. Requires API key.
// @Tags Patrols
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Patrol identifier"
// @Success 200 {object} models.Patrol
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Patrol not found"
// @Router /patrols/{id} [get]
func (h *Handler) getPatrol(c *gin.Context) {
	patrol := h.stateManager.Patrol(c.Param("id"))
	if patrol == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patrol not found"})
		return
	}
	c.JSON(http.StatusOK, patrol)
}

// @Summary List broadcasts
// @Description List broadcasts from the last sync. Requires API key.
// @Tags Broadcasts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Broadcast
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /broadcasts [get]
func (h *Handler) listBroadcasts(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateManager.Broadcasts())
}

// @Summary Get broadcast
// @Description Get a synced broadcast by identifier. Requires API key.
// @Tags Broadcasts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Broadcast identifier"
// @Success 200 {object} models.Broadcast
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Broadcast not found"
// @Router /broadcasts/{id} [get]
func (h *Handler) getBroadcast(c *gin.Context) {
	broadcast := h.stateManager.Broadcast(c.Param("id"))
	if broadcast == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "broadcast not found"})
		return
	}
	c.JSON(http.StatusOK, broadcast)
}

// nonNil заменяет nil на пустой слайс, чтобы в JSON был [] а не null
func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
