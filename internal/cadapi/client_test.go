package cadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/cad_state_system/internal/config"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient создает клиента, направленного на тестовый сервер
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	client := NewClient(&config.Config{
		CADAPIURL:        srv.URL,
		CADAPIToken:      "secret-token",
		CADAPITimeout:    2 * time.Second,
		CADAPIMaxRetries: 3,
	}, logger)
	client.retryInterval = time.Millisecond
	return client
}

func TestSyncPatrolGroup_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cad/sync/patrolgroup", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		var body patrolGroupSyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Collingwood", body.PatrolGroup)

		_, _ = w.Write([]byte(`{
			"incidents": [{"incidentNumber": "AS4205", "grade": "P1", "status": "Current"}],
			"resources": [{"callsign": "P24", "status": "At Incident", "currentIncident": "AS4205", "assignedIncidents": ["AS4205"], "officerIds": ["1001"]}],
			"officers": [{"id": "1001", "givenName": "Herli", "familyName": "Halim"}],
			"patrols": [],
			"broadcasts": [{"identifier": "BC1", "title": "Road closure", "type": "Event"}]
		}`))
	})

	snapshot, err := client.SyncPatrolGroup(context.Background(), "Collingwood")

	require.NoError(t, err)
	require.Len(t, snapshot.Incidents, 1)
	assert.Equal(t, models.IncidentGradeP1, snapshot.Incidents[0].Grade)
	require.Len(t, snapshot.Resources, 1)
	assert.Equal(t, models.StatusAtIncident, snapshot.Resources[0].Status)
	assert.Equal(t, "AS4205", snapshot.Resources[0].CurrentIncident)
	assert.Equal(t, "Halim", snapshot.Officers[0].FamilyName)
	assert.Equal(t, models.BroadcastCategoryEvent, snapshot.Broadcasts[0].Type)
}

func TestSyncBoundingBox_SendsCorners(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cad/sync/boundingbox", r.URL.Path)
		var body boundingBoxSyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, -37.80, body.NorthWestCoordinate.Latitude)
		assert.Equal(t, 145.00, body.SouthEastCoordinate.Longitude)
		_, _ = w.Write([]byte(`{}`))
	})

	box := models.BoundingBox{
		NorthWest: models.Coordinate{Latitude: -37.80, Longitude: 144.90},
		SouthEast: models.Coordinate{Latitude: -37.85, Longitude: 145.00},
	}
	snapshot, err := client.SyncBoundingBox(context.Background(), box)

	require.NoError(t, err)
	assert.Empty(t, snapshot.Incidents)
}

func TestDo_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.BookOff(context.Background(), models.BookOffRequest{Callsign: "P24"})

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	err := client.BookOn(context.Background(), &models.BookOnRequest{Callsign: "P24"})

	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "incident not found", http.StatusNotFound)
	})

	incident, err := client.IncidentDetails(context.Background(), "AS4205")

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "incident not found")
	assert.Equal(t, int32(1), calls.Load())
}

func TestUpdateResourceStatus_EscapesCallsign(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cad/resource/P%2024/status", r.URL.EscapedPath())
		var body models.StatusUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.StatusProceeding, body.Status)
		assert.Equal(t, "AS4205", body.IncidentNumber)
		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateResourceStatus(context.Background(), models.StatusUpdateRequest{
		Callsign:       "P 24",
		Status:         models.StatusProceeding,
		IncidentNumber: "AS4205",
	})

	require.NoError(t, err)
}

func TestResourceDetails_NormalizesStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"callsign": "P24", "currentIncident": "AS1"}`))
	})

	resource, err := client.ResourceDetails(context.Background(), "P24")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultResourceStatus, resource.Status)
	assert.Equal(t, []string{"AS1"}, resource.AssignedIncidents)
}

func TestFetchManifest_DecodesEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body models.ManifestFetchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{models.ManifestCollectionEquipment}, body.Collections)
		_, _ = w.Write([]byte(`[{"id": "e1", "collection": "equipment", "title": "Taser", "active": true}]`))
	})

	entries, err := client.FetchManifest(context.Background(), models.ManifestFetchRequest{
		Collections: []string{models.ManifestCollectionEquipment},
	})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Taser", entries[0].Title)
}

func TestDo_InvalidJSONIsPermanent(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"callsign":`))
	})

	_, err := client.EmployeeDetails(context.Background(), "jsmith")

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to decode response")
	assert.Equal(t, int32(1), calls.Load())
}
