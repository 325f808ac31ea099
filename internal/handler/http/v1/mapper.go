package v1

import "github.com/shenikar/cad_state_system/internal/models"

// DTOToBookOnModel преобразует DTO выхода на смену в доменную модель
func DTOToBookOnModel(dto BookOnRequest) *models.BookOnRequest {
	employees := make([]models.Officer, len(dto.Employees))
	for i, e := range dto.Employees {
		employees[i] = models.Officer{
			ID:          e.ID,
			Username:    e.Username,
			GivenName:   e.GivenName,
			FamilyName:  e.FamilyName,
			Rank:        e.Rank,
			Station:     e.Station,
			PatrolGroup: e.PatrolGroup,
			RadioID:     e.RadioID,
		}
	}

	var equipment []models.Equipment
	if len(dto.Equipment) > 0 {
		equipment = make([]models.Equipment, len(dto.Equipment))
		for i, e := range dto.Equipment {
			equipment[i] = models.Equipment{ID: e.ID, Description: e.Description, Count: e.Count}
		}
	}

	return &models.BookOnRequest{
		Callsign:        dto.Callsign,
		Employees:       employees,
		Equipment:       equipment,
		ShiftStart:      dto.ShiftStart,
		ShiftEnd:        dto.ShiftEnd,
		Category:        dto.Category,
		Serial:          dto.Serial,
		Odometer:        dto.Odometer,
		Remarks:         dto.Remarks,
		DriverPayrollID: dto.DriverPayrollID,
	}
}

// DTOToStatusChange преобразует DTO смены статуса в доменную модель
func DTOToStatusChange(dto StatusChangeRequest) models.StatusChange {
	return models.StatusChange{
		Status:           models.ResourceStatus(dto.Status),
		IncidentNumber:   dto.IncidentNumber,
		Comments:         dto.Comments,
		LocationComments: dto.LocationComments,
	}
}

// DTOToSyncMode преобразует DTO режима синхронизации в доменную модель
func DTOToSyncMode(dto SyncModeRequest) models.SyncMode {
	switch models.SyncModeKind(dto.Kind) {
	case models.SyncModePatrolGroup:
		return models.PatrolGroupSync(dto.PatrolGroup)
	case models.SyncModeMap:
		if dto.BoundingBox == nil {
			return models.SyncMode{Kind: models.SyncModeMap}
		}
		return models.MapSync(models.BoundingBox{
			NorthWest: models.Coordinate{Latitude: dto.BoundingBox.NorthWest.Latitude, Longitude: dto.BoundingBox.NorthWest.Longitude},
			SouthEast: models.Coordinate{Latitude: dto.BoundingBox.SouthEast.Latitude, Longitude: dto.BoundingBox.SouthEast.Longitude},
		})
	}
	return models.NoSync()
}

// ModelToSessionResponse преобразует сводку сессии в DTO для ответа
func ModelToSessionResponse(summary models.SessionSummary) SessionResponse {
	return SessionResponse{
		BookedOn:             summary.IsBookedOn(),
		Officer:              summary.Officer,
		PatrolGroup:          summary.PatrolGroup,
		SyncMode:             summary.SyncMode,
		BookOn:               summary.BookOn,
		LastSyncTime:         summary.LastSyncTime,
		LastManifestSyncTime: summary.LastManifestSyncTime,
		CurrentResource:      summary.CurrentResource,
		CurrentIncident:      summary.CurrentIncident,
	}
}
