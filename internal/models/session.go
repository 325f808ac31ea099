package models

import "time"

// SessionState - часть сессии, которая переживает перезапуск сервиса
type SessionState struct {
	SessionID   string         `json:"session_id"`
	PatrolGroup string         `json:"patrol_group,omitempty"`
	BookOn      *BookOnRequest `json:"book_on,omitempty"`
	Officer     *Officer       `json:"officer,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// SessionSummary - снимок текущей сессии для читателей
type SessionSummary struct {
	Officer              *Officer       `json:"officer,omitempty"`
	PatrolGroup          string         `json:"patrolGroup,omitempty"`
	SyncMode             SyncMode       `json:"syncMode"`
	BookOn               *BookOnRequest `json:"bookOn,omitempty"`
	LastSyncTime         *time.Time     `json:"lastSyncTime,omitempty"`
	LastManifestSyncTime *time.Time     `json:"lastManifestSyncTime,omitempty"`
	CurrentResource      *Resource      `json:"currentResource,omitempty"`
	CurrentIncident      *Incident      `json:"currentIncident,omitempty"`
}

func (s SessionSummary) IsBookedOn() bool {
	return s.BookOn != nil
}
