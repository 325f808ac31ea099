package v1

import (
	"time"

	"github.com/shenikar/cad_state_system/internal/models"
)

// PatrolGroupRequest DTO для смены патрульной группы. Пустая группа отключает синхронизацию.
// @Description DTO для смены патрульной группы
type PatrolGroupRequest struct {
	PatrolGroup string `json:"patrol_group" validate:"max=100"`
}

// CoordinateRequest DTO точки на карте
// @Description DTO точки на карте
type CoordinateRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// BoundingBoxRequest DTO видимой области карты
// @Description DTO видимой области карты
type BoundingBoxRequest struct {
	NorthWest CoordinateRequest `json:"north_west"`
	SouthEast CoordinateRequest `json:"south_east"`
}

// SyncModeRequest DTO для смены режима синхронизации
// @Description DTO для смены режима синхронизации
type SyncModeRequest struct {
	Kind        string              `json:"kind" validate:"required,oneof=none patrol_group map"`
	PatrolGroup string              `json:"patrol_group,omitempty" validate:"required_if=Kind patrol_group,max=100"`
	BoundingBox *BoundingBoxRequest `json:"bounding_box,omitempty" validate:"required_if=Kind map"`
}

// EmployeeRequest DTO сотрудника экипажа
// @Description DTO сотрудника экипажа
type EmployeeRequest struct {
	ID          string `json:"id" validate:"required"`
	Username    string `json:"username,omitempty"`
	GivenName   string `json:"given_name,omitempty"`
	FamilyName  string `json:"family_name,omitempty"`
	Rank        string `json:"rank,omitempty"`
	Station     string `json:"station,omitempty"`
	PatrolGroup string `json:"patrol_group,omitempty"`
	RadioID     string `json:"radio_id,omitempty"`
}

// EquipmentRequest DTO единицы снаряжения
// @Description DTO единицы снаряжения
type EquipmentRequest struct {
	ID          string `json:"id" validate:"required"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count" validate:"gte=0"`
}

// BookOnRequest DTO для выхода на смену
// @Description DTO для выхода на смену
type BookOnRequest struct {
	Callsign        string             `json:"callsign" validate:"required,max=20"`
	Employees       []EmployeeRequest  `json:"employees" validate:"required,min=1,dive"`
	Equipment       []EquipmentRequest `json:"equipment,omitempty" validate:"omitempty,dive"`
	ShiftStart      *time.Time         `json:"shift_start,omitempty"`
	ShiftEnd        *time.Time         `json:"shift_end,omitempty"`
	Category        string             `json:"category,omitempty"`
	Serial          string             `json:"serial,omitempty"`
	Odometer        string             `json:"odometer,omitempty"`
	Remarks         string             `json:"remarks,omitempty" validate:"max=500"`
	DriverPayrollID string             `json:"driver_payroll_id,omitempty"`
}

// StatusChangeRequest DTO для смены статуса позывного
// @Description DTO для смены статуса позывного
type StatusChangeRequest struct {
	Status           string `json:"status" validate:"required"`
	IncidentNumber   string `json:"incident_number,omitempty"`
	Comments         string `json:"comments,omitempty" validate:"max=500"`
	LocationComments string `json:"location_comments,omitempty" validate:"max=500"`
}

// ManifestSyncRequest DTO для обновления справочника. Пустой список означает полную загрузку.
// @Description DTO для обновления справочника
type ManifestSyncRequest struct {
	Collections []string `json:"collections,omitempty" validate:"omitempty,dive,oneof=equipment capability patrolgroup"`
}

// SessionResponse DTO для ответа с состоянием сессии
// @Description DTO для ответа с состоянием сессии
type SessionResponse struct {
	BookedOn             bool                  `json:"booked_on"`
	Officer              *models.Officer       `json:"officer,omitempty"`
	PatrolGroup          string                `json:"patrol_group,omitempty"`
	SyncMode             models.SyncMode       `json:"sync_mode"`
	BookOn               *models.BookOnRequest `json:"book_on,omitempty"`
	LastSyncTime         *time.Time            `json:"last_sync_time,omitempty"`
	LastManifestSyncTime *time.Time            `json:"last_manifest_sync_time,omitempty"`
	CurrentResource      *models.Resource      `json:"current_resource,omitempty"`
	CurrentIncident      *models.Incident      `json:"current_incident,omitempty"`
}

// RecentIDsResponse DTO для ответа с недавно использованными идентификаторами
// @Description DTO для ответа с недавно использованными идентификаторами
type RecentIDsResponse struct {
	Kind string   `json:"kind"`
	IDs  []string `json:"ids"`
}
