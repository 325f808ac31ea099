package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/cad_state_system/internal/models"
)

// @Summary Subscribe to state events
// @Description Upgrade to a WebSocket that streams state events as JSON. Requires API key.
// @Tags Events
// @Security ApiKeyAuth
// @Param types query string false "Comma separated event types, all types when empty"
// @Success 101 "Switching Protocols"
// @Failure 400 {object} map[string]string "Unknown event type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /events/ws [get]
func (h *Handler) streamEvents(c *gin.Context) {
	log := h.logger.WithField("method", "streamEvents")

	types, err := parseEventTypes(c.Query("types"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// После неудачного апгрейда ответ уже отправлен
	if err := h.events.ServeWS(c.Writer, c.Request, types); err != nil {
		log.WithError(err).Warn("Failed to open event stream")
	}
}

type unknownEventTypeError string

func (e unknownEventTypeError) Error() string {
	return "unknown event type: " + string(e)
}

func parseEventTypes(raw string) ([]models.EventType, error) {
	if raw == "" {
		return nil, nil
	}

	var types []models.EventType
	for _, part := range strings.Split(raw, ",") {
		eventType := models.EventType(strings.TrimSpace(part))
		switch eventType {
		case models.EventSyncChanged, models.EventBookOnChanged, models.EventCallsignChanged, models.EventNotificationDue:
			types = append(types, eventType)
		case "":
		default:
			return nil, unknownEventTypeError(eventType)
		}
	}
	return types, nil
}
