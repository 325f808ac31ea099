package models

import (
	"slices"
	"time"
)

// ResourceUnit - тип ресурса
type ResourceUnit string

const (
	ResourceUnitVehicle    ResourceUnit = "vehicle"
	ResourceUnitMotorcycle ResourceUnit = "motorcycle"
	ResourceUnitDog        ResourceUnit = "dog"
	ResourceUnitAircraft   ResourceUnit = "aircraft"
	ResourceUnitBoat       ResourceUnit = "boat"
	ResourceUnitFoot       ResourceUnit = "foot"
)

type Equipment struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

// Resource - ресурс (позывной). CurrentIncident пустой, если текущего инцидента нет.
type Resource struct {
	Callsign          string         `json:"callsign"`
	Status            ResourceStatus `json:"status"`
	Type              ResourceUnit   `json:"type,omitempty"`
	PatrolGroup       string         `json:"patrolGroup,omitempty"`
	Station           string         `json:"station,omitempty"`
	Category          string         `json:"category,omitempty"`
	Serial            string         `json:"serial,omitempty"`
	Odometer          string         `json:"odometer,omitempty"`
	Remarks           string         `json:"remarks,omitempty"`
	Driver            string         `json:"driver,omitempty"`
	CurrentIncident   string         `json:"currentIncident,omitempty"`
	AssignedIncidents []string       `json:"assignedIncidents,omitempty"`
	OfficerIDs        []string       `json:"officerIds,omitempty"`
	Equipment         []Equipment    `json:"equipment,omitempty"`
	Location          *Location      `json:"location,omitempty"`
	ShiftStart        *time.Time     `json:"shiftStart,omitempty"`
	ShiftEnd          *time.Time     `json:"shiftEnd,omitempty"`
	LastUpdated       *time.Time     `json:"lastUpdated,omitempty"`
}

func (r *Resource) Clone() *Resource {
	c := *r
	c.AssignedIncidents = slices.Clone(r.AssignedIncidents)
	c.OfficerIDs = slices.Clone(r.OfficerIDs)
	c.Equipment = slices.Clone(r.Equipment)
	if r.Location != nil {
		loc := *r.Location
		c.Location = &loc
	}
	return &c
}

// AssignIncident делает инцидент текущим и добавляет его в назначенные
func (r *Resource) AssignIncident(incidentNumber string) {
	r.CurrentIncident = incidentNumber
	if !slices.Contains(r.AssignedIncidents, incidentNumber) {
		r.AssignedIncidents = append(r.AssignedIncidents, incidentNumber)
	}
}

// ClearIncident снимает назначение инцидента с ресурса
func (r *Resource) ClearIncident(incidentNumber string) {
	if idx := slices.Index(r.AssignedIncidents, incidentNumber); idx >= 0 {
		r.AssignedIncidents = slices.Delete(r.AssignedIncidents, idx, idx+1)
	}
	if r.CurrentIncident == incidentNumber {
		r.CurrentIncident = ""
	}
}

// Normalize приводит ресурс из снимка к согласованному виду: пустой статус
// заменяется значением по умолчанию, текущий инцидент всегда входит в назначенные.
func (r *Resource) Normalize() {
	if r.Status == "" {
		r.Status = DefaultResourceStatus
	}
	if r.Type == "" {
		r.Type = ResourceUnitVehicle
	}
	if r.CurrentIncident != "" && !slices.Contains(r.AssignedIncidents, r.CurrentIncident) {
		r.AssignedIncidents = append(r.AssignedIncidents, r.CurrentIncident)
	}
}
