package models

import "time"

// Коллекции справочника (manifest)
const (
	ManifestCollectionEquipment   = "equipment"
	ManifestCollectionCapability  = "capability"
	ManifestCollectionPatrolGroup = "patrolgroup"
)

type ManifestEntry struct {
	ID          string     `json:"id"`
	Collection  string     `json:"collection"`
	Title       string     `json:"title"`
	Value       string     `json:"value,omitempty"`
	Active      bool       `json:"active"`
	SortOrder   int        `json:"sortOrder"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// ManifestFetchRequest - запрос изменений справочника. Пустой список коллекций
// означает полную загрузку.
type ManifestFetchRequest struct {
	Since       *time.Time `json:"since,omitempty"`
	Collections []string   `json:"collections,omitempty"`
}

// Виды недавно использованных идентификаторов
const (
	RecentCallsigns = "callsigns"
	RecentOfficers  = "officers"
)
