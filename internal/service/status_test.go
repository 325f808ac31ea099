package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUpdateCallsignStatus_AssignsIncident(t *testing.T) {
	// Подготовка
	manager, deps := newTestStateManager(t)
	seedState(manager, testSnapshot(), &models.BookOnRequest{Callsign: "P24"})

	// Ожидания
	deps.api.EXPECT().
		UpdateResourceStatus(gomock.Any(), models.StatusUpdateRequest{
			Callsign:       "P24",
			Status:         models.StatusProceeding,
			IncidentNumber: "AS2",
		}).
		Return(nil).
		Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventCallsignChanged)).Return(nil).Times(1)

	// Действие
	err := manager.UpdateCallsignStatus(context.Background(), models.StatusChange{
		Status:         models.StatusProceeding,
		IncidentNumber: "AS2",
	})

	// Проверки
	require.NoError(t, err)
	resource := manager.Resource("P24")
	assert.Equal(t, models.StatusProceeding, resource.Status)
	assert.Equal(t, "AS2", resource.CurrentIncident)
	assert.Contains(t, resource.AssignedIncidents, "AS2")
	assert.Contains(t, manager.Incident("AS2").ResourceCallsigns, "P24")

	// Назначенный ресурс поднимается в начало списка
	assert.Equal(t, "P24", manager.Resources()[0].Callsign)

	session := manager.Session()
	require.NotNil(t, session.CurrentIncident)
	assert.Equal(t, "AS2", session.CurrentIncident.IncidentNumber)
}

func TestUpdateCallsignStatus_Finalise(t *testing.T) {
	// Подготовка
	manager, deps := newTestStateManager(t)
	snapshot := testSnapshot()
	snapshot.Resources[1].Status = models.StatusAtIncident
	snapshot.Resources[1].CurrentIncident = "AS1"
	// P40 назначен на AS1, но не указан в списке позывных инцидента
	snapshot.Resources[2].AssignedIncidents = []string{"AS1"}
	seedState(manager, snapshot, &models.BookOnRequest{Callsign: "P24"})

	// Ожидания
	deps.api.EXPECT().UpdateResourceStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	gomock.InOrder(
		deps.publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventSyncChanged)).Return(nil),
		deps.publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventCallsignChanged)).Return(nil),
	)

	// Действие
	err := manager.UpdateCallsignStatus(context.Background(), models.StatusChange{
		Status:   models.StatusFinalise,
		Comments: "Job done",
	})

	// Проверки
	require.NoError(t, err)
	resource := manager.Resource("P24")
	assert.Equal(t, models.StatusOnAir, resource.Status)
	assert.Empty(t, resource.CurrentIncident)
	assert.NotContains(t, resource.AssignedIncidents, "AS1")

	// Инцидент снят со всех ресурсов и удален из снимка
	for _, callsign := range []string{"P30", "P40"} {
		other := manager.Resource(callsign)
		assert.Empty(t, other.CurrentIncident, callsign)
		assert.NotContains(t, other.AssignedIncidents, "AS1", callsign)
	}
	assert.Empty(t, manager.ResourcesForIncident("AS1"))
	assert.Nil(t, manager.Incident("AS1"))
	for _, incident := range manager.Incidents() {
		assert.NotEqual(t, "AS1", incident.IncidentNumber)
	}
	assert.NotNil(t, manager.Session().LastSyncTime)
}

func TestUpdateCallsignStatus_AssignedResourceMovesToFront(t *testing.T) {
	// Подготовка
	manager, deps := newTestStateManager(t)
	seedState(manager, testSnapshot(), &models.BookOnRequest{Callsign: "P24"})

	// Ожидания
	deps.api.EXPECT().UpdateResourceStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventCallsignChanged)).Return(nil).Times(1)

	// Действие
	err := manager.UpdateCallsignStatus(context.Background(), models.StatusChange{
		Status:         models.StatusProceeding,
		IncidentNumber: "AS1",
	})

	// Проверки: первый найденный ресурс инцидента - только что назначенный
	require.NoError(t, err)
	resources := manager.Resources()
	assert.Equal(t, []string{"P24", "P30", "P40"}, callsigns(resources))
	assert.Equal(t, []string{"P24", "P30"}, callsigns(manager.ResourcesForIncident("AS1")))
}

func TestUpdateCallsignStatus_GeneralStatusClearsIncident(t *testing.T) {
	// Подготовка
	manager, deps := newTestStateManager(t)
	seedState(manager, testSnapshot(), &models.BookOnRequest{Callsign: "P30"})

	// Ожидания
	deps.api.EXPECT().UpdateResourceStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventCallsignChanged)).Return(nil).Times(1)

	// Действие
	err := manager.UpdateCallsignStatus(context.Background(), models.StatusChange{
		Status:   models.StatusMealBreak,
		Comments: "Reassigned by supervisor",
	})

	// Проверки
	require.NoError(t, err)
	resource := manager.Resource("P30")
	assert.Equal(t, models.StatusMealBreak, resource.Status)
	assert.Empty(t, resource.CurrentIncident)
	assert.Empty(t, manager.Incident("AS1").ResourceCallsigns)
	assert.Nil(t, manager.IncidentForResource("P30"))
}

func TestUpdateCallsignStatus_DuressNeedsNoReason(t *testing.T) {
	// Подготовка
	manager, deps := newTestStateManager(t)
	seedState(manager, testSnapshot(), &models.BookOnRequest{Callsign: "P30"})

	// Ожидания
	deps.api.EXPECT().UpdateResourceStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), eventOfType(models.EventCallsignChanged)).Return(nil).Times(1)

	// Действие
	err := manager.UpdateCallsignStatus(context.Background(), models.StatusChange{Status: models.StatusDuress})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusDuress, manager.Resource("P30").Status)
}

func TestUpdateCallsignStatus_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		callsign string
		bookedOn bool
		change   models.StatusChange
		wantErr  error
	}{
		{
			name:     "not booked on",
			callsign: "P24",
			change:   models.StatusChange{Status: models.StatusMealBreak},
			wantErr:  ErrNotBookedOn,
		},
		{
			name:     "unknown status",
			callsign: "P24",
			bookedOn: true,
			change:   models.StatusChange{Status: "Sleeping"},
			wantErr:  ErrInvalidStatus,
		},
		{
			name:     "same status",
			callsign: "P24",
			bookedOn: true,
			change:   models.StatusChange{Status: models.StatusOnAir},
			wantErr:  ErrStatusUnchanged,
		},
		{
			name:     "leaving incident without reason",
			callsign: "P30",
			bookedOn: true,
			change:   models.StatusChange{Status: models.StatusOnAir, Comments: "  "},
			wantErr:  ErrReasonRequired,
		},
		{
			name:     "incident status without incident",
			callsign: "P24",
			bookedOn: true,
			change:   models.StatusChange{Status: models.StatusProceeding},
			wantErr:  ErrIncidentRequired,
		},
		{
			name:     "unknown incident",
			callsign: "P24",
			bookedOn: true,
			change:   models.StatusChange{Status: models.StatusProceeding, IncidentNumber: "AS999"},
			wantErr:  ErrIncidentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка
			manager, _ := newTestStateManager(t)
			var bookOn *models.BookOnRequest
			if tt.bookedOn {
				bookOn = &models.BookOnRequest{Callsign: tt.callsign}
			}
			seedState(manager, testSnapshot(), bookOn)

			// Действие
			err := manager.UpdateCallsignStatus(context.Background(), tt.change)

			// Проверки: API не вызывается, состояние не меняется
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, testSnapshot().Resources[1].Status, manager.Resource("P24").Status)
		})
	}
}

func TestUpdateCallsignStatus_APIErrorKeepsState(t *testing.T) {
	// Подготовка
	manager, deps := newTestStateManager(t)
	seedState(manager, testSnapshot(), &models.BookOnRequest{Callsign: "P24"})
	apiErr := errors.New("status rejected")

	// Ожидания
	deps.api.EXPECT().UpdateResourceStatus(gomock.Any(), gomock.Any()).Return(apiErr).Times(1)

	// Действие
	err := manager.UpdateCallsignStatus(context.Background(), models.StatusChange{Status: models.StatusCourt})

	// Проверки
	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, models.StatusOnAir, manager.Resource("P24").Status)
}
