package models

import (
	"slices"
	"time"
)

// BookOnRequest - данные выхода экипажа на смену под позывным.
// Наличие последнего BookOnRequest означает, что пользователь на смене.
type BookOnRequest struct {
	Callsign        string      `json:"callsign" validate:"required"`
	Employees       []Officer   `json:"employees" validate:"required,min=1,dive"`
	Equipment       []Equipment `json:"equipment,omitempty"`
	ShiftStart      *time.Time  `json:"shiftStart,omitempty"`
	ShiftEnd        *time.Time  `json:"shiftEnd,omitempty"`
	Category        string      `json:"category,omitempty"`
	Serial          string      `json:"serial,omitempty"`
	Odometer        string      `json:"odometer,omitempty"`
	Remarks         string      `json:"remarks,omitempty"`
	DriverPayrollID string      `json:"driverPayrollId,omitempty"`
}

// EmployeeIDs возвращает табельные номера экипажа в исходном порядке
func (r *BookOnRequest) EmployeeIDs() []string {
	ids := make([]string, 0, len(r.Employees))
	for _, e := range r.Employees {
		ids = append(ids, e.ID)
	}
	return ids
}

func (r *BookOnRequest) Clone() *BookOnRequest {
	c := *r
	c.Employees = make([]Officer, 0, len(r.Employees))
	for i := range r.Employees {
		c.Employees = append(c.Employees, *r.Employees[i].Clone())
	}
	c.Equipment = slices.Clone(r.Equipment)
	return &c
}

type BookOffRequest struct {
	Callsign string `json:"callsign"`
}

// StatusChange - запрос на смену статуса позывного
type StatusChange struct {
	Status           ResourceStatus `json:"status"`
	IncidentNumber   string         `json:"incidentNumber,omitempty"`
	Comments         string         `json:"comments,omitempty"`
	LocationComments string         `json:"locationComments,omitempty"`
}

// StatusUpdateRequest - тело запроса смены статуса во внешний CAD API
type StatusUpdateRequest struct {
	Callsign         string         `json:"callsign"`
	Status           ResourceStatus `json:"status"`
	IncidentNumber   string         `json:"incidentNumber,omitempty"`
	Comments         string         `json:"comments,omitempty"`
	LocationComments string         `json:"locationComments,omitempty"`
}
