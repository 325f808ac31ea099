package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/cad_state_system/internal/models"
)

// @Summary Sync manifest
// @Description Fetch manifest changes since the last update. Without collections all collections are fetched. Requires API key.
// @Tags Manifest
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ManifestSyncRequest false "Collections to sync"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /manifest/sync [post]
func (h *Handler) syncManifest(c *gin.Context) {
	var input ManifestSyncRequest
	log := h.logger.WithField("method", "syncManifest")

	// Тело запроса необязательно
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.stateManager.SyncManifest(c.Request.Context(), input.Collections); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}

// @Summary List manifest entries
// @Description List manifest entries of a collection ordered by sort order. Requires API key.
// @Tags Manifest
// @Produce json
// @Security ApiKeyAuth
// @Param collection path string true "Collection" Enums(equipment, capability, patrolgroup)
// @Param active_only query bool false "Only active entries" default(true)
// @Success 200 {array} models.ManifestEntry
// @Failure 400 {object} map[string]string "Invalid collection or parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /manifest/{collection} [get]
func (h *Handler) listManifestEntries(c *gin.Context) {
	collection := c.Param("collection")
	log := h.logger.WithField("method", "listManifestEntries").WithField("collection", collection)

	switch collection {
	case models.ManifestCollectionEquipment, models.ManifestCollectionCapability, models.ManifestCollectionPatrolGroup:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collection"})
		return
	}

	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active_only parameter"})
		return
	}

	entries, err := h.stateManager.ManifestEntries(c.Request.Context(), collection, activeOnly)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if entries == nil {
		entries = []models.ManifestEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary List recently used ids
// @Description List recently booked on callsigns or officers, most recent first. Requires API key.
// @Tags Manifest
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Kind" Enums(callsigns, officers)
// @Success 200 {object} RecentIDsResponse
// @Failure 400 {object} map[string]string "Invalid kind"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /recent/{kind} [get]
func (h *Handler) listRecentIDs(c *gin.Context) {
	kind := c.Param("kind")
	log := h.logger.WithField("method", "listRecentIDs").WithField("kind", kind)

	if kind != models.RecentCallsigns && kind != models.RecentOfficers {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
		return
	}

	ids, err := h.stateManager.RecentIDs(c.Request.Context(), kind)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, RecentIDsResponse{Kind: kind, IDs: ids})
}
