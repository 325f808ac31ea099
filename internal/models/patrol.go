package models

import "time"

type PatrolStatus string

const (
	PatrolStatusAssigned   PatrolStatus = "Assigned"
	PatrolStatusUnassigned PatrolStatus = "Unassigned"
)

type Patrol struct {
	Identifier  string       `json:"identifier"`
	Type        string       `json:"type,omitempty"`
	Status      PatrolStatus `json:"status,omitempty"`
	PatrolGroup string       `json:"patrolGroup,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Details     string       `json:"details,omitempty"`
	CreatedAt   *time.Time   `json:"createdAt,omitempty"`
}

func (p *Patrol) Clone() *Patrol {
	c := *p
	if p.Location != nil {
		loc := *p.Location
		c.Location = &loc
	}
	return &c
}

type BroadcastCategory string

const (
	BroadcastCategoryAlert    BroadcastCategory = "Alert"
	BroadcastCategoryEvent    BroadcastCategory = "Event"
	BroadcastCategoryIncident BroadcastCategory = "Incident"
)

type Broadcast struct {
	Identifier  string            `json:"identifier"`
	Title       string            `json:"title,omitempty"`
	Type        BroadcastCategory `json:"type,omitempty"`
	Details     string            `json:"details,omitempty"`
	Location    *Location         `json:"location,omitempty"`
	CreatedAt   *time.Time        `json:"createdAt,omitempty"`
	LastUpdated *time.Time        `json:"lastUpdated,omitempty"`
}

func (b *Broadcast) Clone() *Broadcast {
	c := *b
	if b.Location != nil {
		loc := *b.Location
		c.Location = &loc
	}
	return &c
}
