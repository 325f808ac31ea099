package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Get current session
// @Description Get the logged in officer, book on details, sync mode and current callsign. Requires API key.
// @Tags Session
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session [get]
func (h *Handler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}

// @Summary Clear session
// @Description Reset all session data, indexes and book on details. Requires API key.
// @Tags Session
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session [delete]
func (h *Handler) clearSession(c *gin.Context) {
	log := h.logger.WithField("method", "clearSession")

	if err := h.stateManager.ClearSession(c.Request.Context()); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Sync CAD details
// @Description Sync incidents, resources, officers, patrols and broadcasts for the current sync mode. Requires API key.
// @Tags Session
// @Produce json
// @Security ApiKeyAuth
// @Param force query bool false "Force sync even if the map area barely moved" default(false)
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid force parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /session/sync [post]
func (h *Handler) syncDetails(c *gin.Context) {
	log := h.logger.WithField("method", "syncDetails")

	force, err := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid force parameter"})
		return
	}

	if err := h.stateManager.SyncDetails(c.Request.Context(), force); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}

// @Summary Run initial sync
// @Description Restore the persisted session, load the logged in officer, sync the manifest and force a sync. Requires API key.
// @Tags Session
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "No officer is logged in"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /session/sync/initial [post]
func (h *Handler) syncInitial(c *gin.Context) {
	log := h.logger.WithField("method", "syncInitial")

	if err := h.stateManager.SyncInitial(c.Request.Context()); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}

// @Summary Set patrol group
// @Description Set the patrol group to sync. An empty group disables syncing. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PatrolGroupRequest true "Patrol group"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /session/patrol-group [put]
func (h *Handler) setPatrolGroup(c *gin.Context) {
	var input PatrolGroupRequest
	log := h.logger.WithField("method", "setPatrolGroup")

	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.stateManager.SetPatrolGroup(c.Request.Context(), input.PatrolGroup); err != nil {
		h.respondError(c, log.WithField("patrol_group", input.PatrolGroup), err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}

// @Summary Set sync mode
// @Description Switch between no sync, patrol group sync and map area sync. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SyncModeRequest true "Sync mode"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Sync mode is incomplete"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /session/sync-mode [put]
func (h *Handler) setSyncMode(c *gin.Context) {
	var input SyncModeRequest
	log := h.logger.WithField("method", "setSyncMode")

	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.stateManager.SetSyncMode(c.Request.Context(), DTOToSyncMode(input)); err != nil {
		h.respondError(c, log.WithField("kind", input.Kind), err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}

// @Summary Book on
// @Description Book on a callsign with a crew and equipment. Requires API key.
// @Tags Shift
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BookOnRequest true "Book on details"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Logged in officer is not part of the crew"
// @Failure 422 {object} map[string]string "Invalid shift times"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /session/book-on [post]
func (h *Handler) bookOn(c *gin.Context) {
	var input BookOnRequest
	log := h.logger.WithField("method", "bookOn")

	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.stateManager.BookOn(c.Request.Context(), DTOToBookOnModel(input)); err != nil {
		h.respondError(c, log.WithField("callsign", input.Callsign), err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}

// @Summary Book off
// @Description Terminate the shift of the booked on callsign. Requires API key.
// @Tags Shift
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Not booked on or status cannot terminate"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /session/book-off [post]
func (h *Handler) bookOff(c *gin.Context) {
	log := h.logger.WithField("method", "bookOff")

	if err := h.stateManager.BookOff(c.Request.Context()); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}

// @Summary Update callsign status
// @Description Change the status of the booked on callsign, optionally assigning an incident. Requires API key.
// @Tags Shift
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body StatusChangeRequest true "Status change"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Not booked on or status unchanged"
// @Failure 422 {object} map[string]string "Reason or incident required"
// @Failure 502 {object} map[string]string "CAD API request failed"
// @Router /session/status [put]
func (h *Handler) updateStatus(c *gin.Context) {
	var input StatusChangeRequest
	log := h.logger.WithField("method", "updateStatus")

	if !h.bindJSON(c, log, &input) {
		return
	}

	change := DTOToStatusChange(input)
	if err := h.stateManager.UpdateCallsignStatus(c.Request.Context(), change); err != nil {
		h.respondError(c, log.WithField("status", input.Status), err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(h.stateManager.Session()))
}
