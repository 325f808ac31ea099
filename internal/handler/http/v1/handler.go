package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/cad_state_system/internal/cadapi"
	"github.com/shenikar/cad_state_system/internal/config"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/shenikar/cad_state_system/internal/service"
	"github.com/sirupsen/logrus"
)

// EventStream подключает клиентов WebSocket к потоку событий
type EventStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, types []models.EventType) error
}

type Handler struct {
	stateManager service.StateManager
	events       EventStream
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(stateManager service.StateManager, events EventStream, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		stateManager: stateManager,
		events:       events,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// bindJSON разбирает и валидирует тело запроса. При ошибке ответ уже отправлен.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError отвечает кодом, соответствующим ошибке сервиса
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": message})
}

func errorStatus(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	var apiErr *cadapi.APIError

	switch {
	case errors.Is(err, service.ErrIncidentNotFound),
		errors.Is(err, service.ErrResourceNotFound),
		errors.Is(err, service.ErrOfficerNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrNotLoggedIn),
		errors.Is(err, service.ErrNotBookedOn),
		errors.Is(err, service.ErrCrewMismatch),
		errors.Is(err, service.ErrCannotTerminate),
		errors.Is(err, service.ErrStatusUnchanged):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrReasonRequired),
		errors.Is(err, service.ErrIncidentRequired),
		errors.Is(err, service.ErrInvalidShift),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidSyncMode):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationErrs.Error()
	case errors.Is(err, cadapi.ErrNotFound):
		return http.StatusNotFound, "not found in CAD"
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, "CAD API request failed"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "CAD API request timed out"
	}
	return http.StatusInternalServerError, "internal server error"
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
