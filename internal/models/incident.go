package models

import (
	"slices"
	"time"
)

// IncidentGrade - приоритет инцидента
type IncidentGrade string

const (
	IncidentGradeP1 IncidentGrade = "P1"
	IncidentGradeP2 IncidentGrade = "P2"
	IncidentGradeP3 IncidentGrade = "P3"
	IncidentGradeP4 IncidentGrade = "P4"
)

// IncidentStatus - статус инцидента в CAD
type IncidentStatus string

const (
	IncidentStatusCurrent     IncidentStatus = "Current"
	IncidentStatusAssigned    IncidentStatus = "Assigned"
	IncidentStatusResourced   IncidentStatus = "Resourced"
	IncidentStatusUnresourced IncidentStatus = "Unresourced"
)

type Incident struct {
	IncidentNumber    string         `json:"incidentNumber"`
	Type              string         `json:"type,omitempty"`
	Grade             IncidentGrade  `json:"grade,omitempty"`
	Status            IncidentStatus `json:"status,omitempty"`
	PatrolGroup       string         `json:"patrolGroup,omitempty"`
	Location          *Location      `json:"location,omitempty"`
	Details           string         `json:"details,omitempty"`
	ResourceCallsigns []string       `json:"resourceCallsigns,omitempty"`
	CreatedAt         *time.Time     `json:"createdAt,omitempty"`
	LastUpdated       *time.Time     `json:"lastUpdated,omitempty"`
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	c := *i
	c.ResourceCallsigns = slices.Clone(i.ResourceCallsigns)
	if i.Location != nil {
		loc := *i.Location
		c.Location = &loc
	}
	return &c
}
