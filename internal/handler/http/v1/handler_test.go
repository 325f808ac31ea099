package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/cad_state_system/internal/cadapi"
	"github.com/shenikar/cad_state_system/internal/config"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/shenikar/cad_state_system/internal/service"
	"github.com/shenikar/cad_state_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// fakeEventStream запоминает параметры подписки вместо апгрейда соединения
type fakeEventStream struct {
	types  []models.EventType
	called bool
}

func (f *fakeEventStream) ServeWS(w http.ResponseWriter, r *http.Request, types []models.EventType) error {
	f.called = true
	f.types = types
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}

// newTestHandler создает новый экземпляр Handler с мокированным менеджером состояния
func newTestHandler(t *testing.T) (*Handler, *mocks.MockStateManager, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockManager := mocks.NewMockStateManager(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:     []string{"test-api-key"},
		ServiceName: "cad-state-service-test",
	}

	handler := NewHandler(mockManager, &fakeEventStream{}, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/system/health", handler.healthCheck)
	handler.RegisterRoutes(api)

	return handler, mockManager, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	bodyBytes, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(bodyBytes)
}

func bookedOnSession() models.SessionSummary {
	return models.SessionSummary{
		PatrolGroup: "North",
		SyncMode:    models.PatrolGroupSync("North"),
		BookOn: &models.BookOnRequest{
			Callsign:  "P30",
			Employees: []models.Officer{{ID: "1001"}},
		},
		CurrentResource: &models.Resource{Callsign: "P30", Status: models.StatusOnAir},
	}
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetSession_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().Session().Return(bookedOnSession()).Times(1)

	w := makeRequest(router, "GET", "/api/v1/session", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.BookedOn)
	assert.Equal(t, "P30", resp.CurrentResource.Callsign)
	assert.Equal(t, models.SyncModePatrolGroup, resp.SyncMode.Kind)
}

func TestClearSession_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().ClearSession(gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/session", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestClearSession_ServiceError(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().ClearSession(gomock.Any()).Return(errors.New("db is down")).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/session", nil, apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSyncDetails_Force(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().SyncDetails(gomock.Any(), true).Return(nil).Times(1)
	mockManager.EXPECT().Session().Return(models.SessionSummary{}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/session/sync?force=true", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncDetails_InvalidForce(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().SyncDetails(gomock.Any(), gomock.Any()).Times(0) // Менеджер не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/session/sync?force=maybe", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid force parameter")
}

func TestSyncDetails_UpstreamError(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	apiErr := &cadapi.APIError{Method: "POST", Path: "/cad/sync/patrolgroup", StatusCode: http.StatusBadRequest}

	mockManager.EXPECT().
		SyncDetails(gomock.Any(), false).
		Return(fmt.Errorf("service: could not sync patrol_group: %w", apiErr)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/session/sync", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "CAD API request failed")
}

func TestSyncInitial_NotLoggedIn(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().SyncInitial(gomock.Any()).Return(service.ErrNotLoggedIn).Times(1)

	w := makeRequest(router, "POST", "/api/v1/session/sync/initial", nil, apiKeyHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrNotLoggedIn.Error())
}

func TestSetPatrolGroup_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().SetPatrolGroup(gomock.Any(), "North").Return(nil).Times(1)
	mockManager.EXPECT().Session().Return(models.SessionSummary{PatrolGroup: "North"}).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/session/patrol-group", jsonBody(t, PatrolGroupRequest{PatrolGroup: "North"}), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"patrol_group":"North"`)
}

func TestSetPatrolGroup_InvalidJSON(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().SetPatrolGroup(gomock.Any(), gomock.Any()).Times(0) // Менеджер не должен вызываться

	w := makeRequest(router, "PUT", "/api/v1/session/patrol-group", bytes.NewBufferString(`{"patrol_group": `), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSetSyncMode_Map(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	reqBody := SyncModeRequest{
		Kind: "map",
		BoundingBox: &BoundingBoxRequest{
			NorthWest: CoordinateRequest{Latitude: -37.80, Longitude: 144.90},
			SouthEast: CoordinateRequest{Latitude: -37.85, Longitude: 145.00},
		},
	}
	expectedMode := models.MapSync(models.BoundingBox{
		NorthWest: models.Coordinate{Latitude: -37.80, Longitude: 144.90},
		SouthEast: models.Coordinate{Latitude: -37.85, Longitude: 145.00},
	})

	mockManager.EXPECT().SetSyncMode(gomock.Any(), expectedMode).Return(nil).Times(1)
	mockManager.EXPECT().Session().Return(models.SessionSummary{SyncMode: expectedMode}).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/session/sync-mode", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetSyncMode_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		reqBody SyncModeRequest
		message string
	}{
		{
			name:    "unknown kind",
			reqBody: SyncModeRequest{Kind: "satellite"},
			message: "'Kind' failed on the 'oneof' tag",
		},
		{
			name:    "patrol group without name",
			reqBody: SyncModeRequest{Kind: "patrol_group"},
			message: "'PatrolGroup' failed on the 'required_if' tag",
		},
		{
			name:    "map without bounding box",
			reqBody: SyncModeRequest{Kind: "map"},
			message: "'BoundingBox' failed on the 'required_if' tag",
		},
		{
			name: "latitude out of range",
			reqBody: SyncModeRequest{Kind: "map", BoundingBox: &BoundingBoxRequest{
				NorthWest: CoordinateRequest{Latitude: 120, Longitude: 144.90},
			}},
			message: "'Latitude' failed on the 'latitude' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockManager, router := newTestHandler(t)

			mockManager.EXPECT().SetSyncMode(gomock.Any(), gomock.Any()).Times(0) // Менеджер не должен вызываться

			w := makeRequest(router, "PUT", "/api/v1/session/sync-mode", jsonBody(t, tt.reqBody), apiKeyHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestBookOn_Success(t *testing.T) {
	// Подготовка
	_, mockManager, router := newTestHandler(t)
	shiftStart := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	shiftEnd := shiftStart.Add(10 * time.Hour)
	reqBody := BookOnRequest{
		Callsign:   "P30",
		Employees:  []EmployeeRequest{{ID: "1001", GivenName: "John"}, {ID: "1002"}},
		Equipment:  []EquipmentRequest{{ID: "radio", Count: 2}},
		ShiftStart: &shiftStart,
		ShiftEnd:   &shiftEnd,
	}

	// Ожидания
	mockManager.EXPECT().
		BookOn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.BookOnRequest) error {
			assert.Equal(t, "P30", req.Callsign)
			assert.Equal(t, []string{"1001", "1002"}, req.EmployeeIDs())
			assert.Equal(t, "John", req.Employees[0].GivenName)
			require.Len(t, req.Equipment, 1)
			assert.Equal(t, 2, req.Equipment[0].Count)
			assert.True(t, req.ShiftEnd.Equal(shiftEnd))
			return nil
		}).Times(1)
	mockManager.EXPECT().Session().Return(bookedOnSession()).Times(1)

	// Действие
	w := makeRequest(router, "POST", "/api/v1/session/book-on", jsonBody(t, reqBody), apiKeyHeader)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"booked_on":true`)
}

func TestBookOn_ValidationError(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	reqBody := BookOnRequest{Callsign: "P30"} // Нет экипажа

	mockManager.EXPECT().BookOn(gomock.Any(), gomock.Any()).Times(0) // Менеджер не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/session/book-on", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Employees' failed on the 'required' tag")
}

func TestBookOn_CrewMismatch(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	reqBody := BookOnRequest{Callsign: "P30", Employees: []EmployeeRequest{{ID: "2001"}}}

	mockManager.EXPECT().BookOn(gomock.Any(), gomock.Any()).Return(service.ErrCrewMismatch).Times(1)

	w := makeRequest(router, "POST", "/api/v1/session/book-on", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrCrewMismatch.Error())
}

func TestBookOff_NotBookedOn(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().BookOff(gomock.Any()).Return(service.ErrNotBookedOn).Times(1)

	w := makeRequest(router, "POST", "/api/v1/session/book-off", nil, apiKeyHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookOff_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().BookOff(gomock.Any()).Return(nil).Times(1)
	mockManager.EXPECT().Session().Return(models.SessionSummary{}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/session/book-off", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"booked_on":false`)
}

func TestUpdateStatus_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	reqBody := StatusChangeRequest{Status: "Proceeding", IncidentNumber: "AS1"}

	mockManager.EXPECT().
		UpdateCallsignStatus(gomock.Any(), models.StatusChange{Status: models.StatusProceeding, IncidentNumber: "AS1"}).
		Return(nil).
		Times(1)
	mockManager.EXPECT().Session().Return(bookedOnSession()).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/session/status", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateStatus_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "reason required", err: service.ErrReasonRequired, expectCode: http.StatusUnprocessableEntity},
		{name: "incident required", err: service.ErrIncidentRequired, expectCode: http.StatusUnprocessableEntity},
		{name: "unknown status", err: service.ErrInvalidStatus, expectCode: http.StatusUnprocessableEntity},
		{name: "status unchanged", err: service.ErrStatusUnchanged, expectCode: http.StatusConflict},
		{name: "incident not found", err: service.ErrIncidentNotFound, expectCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockManager, router := newTestHandler(t)

			mockManager.EXPECT().UpdateCallsignStatus(gomock.Any(), gomock.Any()).Return(tt.err).Times(1)

			w := makeRequest(router, "PUT", "/api/v1/session/status", jsonBody(t, StatusChangeRequest{Status: "On Air"}), apiKeyHeader)

			assert.Equal(t, tt.expectCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.err.Error())
		})
	}
}

func TestListIncidents_Success(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	incidents := []*models.Incident{{IncidentNumber: "AS1"}, {IncidentNumber: "AS2"}}

	mockManager.EXPECT().Incidents().Return(incidents).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Incident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "AS1", resp[0].IncidentNumber)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().Incident("AS9").Return(nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/AS9", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetIncidentDetails_NotFoundInCAD(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().GetIncidentDetails(gomock.Any(), "AS9").Return(nil, service.ErrIncidentNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/AS9/details", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListIncidentResources_Empty(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().ResourcesForIncident("AS2").Return(nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/AS2/resources", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetResourceIncident(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().IncidentForResource("P30").Return(&models.Incident{IncidentNumber: "AS1"}).Times(1)
	mockManager.EXPECT().IncidentForResource("P24").Return(nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/resources/P30/incident", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AS1")

	w = makeRequest(router, "GET", "/api/v1/resources/P24/incident", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListResourceOfficers(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().OfficersForResource("P24").Return([]*models.Officer{{ID: "1001"}, {ID: "1002"}}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/resources/P24/officers", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Officer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestGetOfficerDetails_UpstreamError(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().
		GetEmployeeDetails(gomock.Any(), "1001").
		Return(nil, &cadapi.APIError{Method: "GET", Path: "/cad/employee/1001", StatusCode: http.StatusInternalServerError}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/officers/1001/details", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetPatrolAndBroadcast(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().Patrol("PT1").Return(&models.Patrol{Identifier: "PT1"}).Times(1)
	mockManager.EXPECT().Broadcast("BC9").Return(nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/patrols/PT1", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/api/v1/broadcasts/BC9", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSyncManifest_WithoutBody(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().SyncManifest(gomock.Any(), gomock.Nil()).Return(nil).Times(1)
	mockManager.EXPECT().Session().Return(models.SessionSummary{}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/manifest/sync", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncManifest_InvalidCollection(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().SyncManifest(gomock.Any(), gomock.Any()).Times(0) // Менеджер не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/manifest/sync", jsonBody(t, ManifestSyncRequest{Collections: []string{"weapons"}}), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListManifestEntries(t *testing.T) {
	_, mockManager, router := newTestHandler(t)
	entries := []models.ManifestEntry{{ID: "e1", Collection: "equipment", Title: "Radio", Active: true}}

	mockManager.EXPECT().ManifestEntries(gomock.Any(), "equipment", false).Return(entries, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/manifest/equipment?active_only=false", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Radio")
}

func TestListManifestEntries_InvalidCollection(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().ManifestEntries(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Менеджер не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/manifest/weapons", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid collection")
}

func TestListRecentIDs(t *testing.T) {
	_, mockManager, router := newTestHandler(t)

	mockManager.EXPECT().RecentIDs(gomock.Any(), models.RecentCallsigns).Return([]string{"P30", "P24"}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/recent/callsigns", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RecentIDsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"P30", "P24"}, resp.IDs)

	w = makeRequest(router, "GET", "/api/v1/recent/stations", nil, apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamEvents_FiltersTypes(t *testing.T) {
	handler, _, router := newTestHandler(t)
	stream := handler.events.(*fakeEventStream)

	w := makeRequest(router, "GET", "/api/v1/events/ws?types=sync_changed,%20callsign_changed", nil, apiKeyHeader)

	assert.Equal(t, http.StatusSwitchingProtocols, w.Code)
	assert.True(t, stream.called)
	assert.Equal(t, []models.EventType{models.EventSyncChanged, models.EventCallsignChanged}, stream.types)
}

func TestStreamEvents_UnknownType(t *testing.T) {
	handler, _, router := newTestHandler(t)
	stream := handler.events.(*fakeEventStream)

	w := makeRequest(router, "GET", "/api/v1/events/ws?types=weather", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown event type: weather")
	assert.False(t, stream.called)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err        error
		expectCode int
	}{
		{err: service.ErrResourceNotFound, expectCode: http.StatusNotFound},
		{err: fmt.Errorf("service: could not get incident: %w", cadapi.ErrNotFound), expectCode: http.StatusNotFound},
		{err: service.ErrCannotTerminate, expectCode: http.StatusConflict},
		{err: service.ErrInvalidShift, expectCode: http.StatusUnprocessableEntity},
		{err: service.ErrInvalidSyncMode, expectCode: http.StatusUnprocessableEntity},
		{err: &cadapi.APIError{StatusCode: http.StatusBadRequest}, expectCode: http.StatusBadGateway},
		{err: fmt.Errorf("service: could not book on: %w", context.DeadlineExceeded), expectCode: http.StatusGatewayTimeout},
		{err: errors.New("boom"), expectCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, _ := errorStatus(tt.err)
			assert.Equal(t, tt.expectCode, code)
		})
	}
}

func TestNewRouter_RequiresAPIKey(t *testing.T) {
	handler, mockManager, _ := newTestHandler(t)
	router := NewRouter(handler, handler.cfg, handler.logger)

	mockManager.EXPECT().Session().Return(models.SessionSummary{}).Times(1)

	// Health-check без ключа
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/api/v1/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, "GET", "/api/v1/session", nil, map[string]string{"Authorization": "Bearer test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
