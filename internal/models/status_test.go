package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceStatus_Classification(t *testing.T) {
	for _, s := range GeneralResourceStatuses() {
		assert.False(t, s.IsIncidentStatus(), s)
		assert.True(t, s.CanTerminate(), s)
		assert.True(t, s.CanCreateIncident(), s)
	}
	for _, s := range IncidentResourceStatuses() {
		assert.True(t, s.IsIncidentStatus(), s)
		assert.False(t, s.CanTerminate(), s)
		assert.False(t, s.CanCreateIncident(), s)
	}

	assert.True(t, StatusOffDuty.CanTerminate())
	assert.False(t, StatusDuress.CanTerminate())
	assert.True(t, StatusDuress.IsValid())
	assert.False(t, ResourceStatus("Lunch").IsValid())
	assert.Len(t, AllResourceStatuses(), 12)
}

func TestResourceStatus_CanChangeTo(t *testing.T) {
	tests := []struct {
		name           string
		from, to       ResourceStatus
		allowed        bool
		requiresReason bool
	}{
		{name: "same status", from: StatusOnAir, to: StatusOnAir, allowed: false},
		{name: "same incident status", from: StatusAtIncident, to: StatusAtIncident, allowed: false},
		{name: "general to general", from: StatusOnAir, to: StatusMealBreak, allowed: true},
		{name: "general to incident", from: StatusOnAir, to: StatusProceeding, allowed: true},
		{name: "incident to incident", from: StatusProceeding, to: StatusAtIncident, allowed: true},
		{name: "incident to general", from: StatusAtIncident, to: StatusOnAir, allowed: true, requiresReason: true},
		{name: "incident to duress", from: StatusAtIncident, to: StatusDuress, allowed: true, requiresReason: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, requiresReason := tt.from.CanChangeTo(tt.to)
			assert.Equal(t, tt.allowed, allowed)
			assert.Equal(t, tt.requiresReason, requiresReason)
		})
	}
}

func TestResourceStatus_IsChangingToGeneralStatus(t *testing.T) {
	assert.True(t, StatusFinalise.IsChangingToGeneralStatus(StatusOnAir))
	assert.False(t, StatusOnAir.IsChangingToGeneralStatus(StatusCourt))
	assert.False(t, StatusProceeding.IsChangingToGeneralStatus(StatusAtIncident))
}

func TestSyncMode_EqualAndValidate(t *testing.T) {
	box := BoundingBox{NorthWest: Coordinate{-37.80, 144.90}, SouthEast: Coordinate{-37.85, 145.00}}
	moved := BoundingBox{NorthWest: Coordinate{-37.81, 144.90}, SouthEast: Coordinate{-37.86, 145.00}}

	assert.True(t, NoSync().Equal(NoSync()))
	assert.True(t, PatrolGroupSync("North").Equal(PatrolGroupSync("North")))
	assert.False(t, PatrolGroupSync("North").Equal(PatrolGroupSync("South")))
	assert.False(t, PatrolGroupSync("North").Equal(NoSync()))
	assert.True(t, MapSync(box).Equal(MapSync(box)))
	assert.False(t, MapSync(box).Equal(MapSync(moved)))

	assert.True(t, NoSync().Validate())
	assert.True(t, MapSync(box).Validate())
	assert.False(t, PatrolGroupSync("").Validate())
	assert.False(t, SyncMode{Kind: SyncModeMap}.Validate())
	assert.False(t, SyncMode{Kind: "satellite"}.Validate())
}
