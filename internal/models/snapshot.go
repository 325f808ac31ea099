package models

// SyncSnapshot - полный набор данных, полученный за одну синхронизацию.
// Заменяется целиком при каждой успешной синхронизации.
type SyncSnapshot struct {
	Incidents  []*Incident  `json:"incidents"`
	Resources  []*Resource  `json:"resources"`
	Officers   []*Officer   `json:"officers"`
	Patrols    []*Patrol    `json:"patrols"`
	Broadcasts []*Broadcast `json:"broadcasts"`
}

// Clone возвращает глубокую копию снимка. Пустые элементы отбрасываются.
func (s *SyncSnapshot) Clone() *SyncSnapshot {
	c := &SyncSnapshot{
		Incidents:  make([]*Incident, 0, len(s.Incidents)),
		Resources:  make([]*Resource, 0, len(s.Resources)),
		Officers:   make([]*Officer, 0, len(s.Officers)),
		Patrols:    make([]*Patrol, 0, len(s.Patrols)),
		Broadcasts: make([]*Broadcast, 0, len(s.Broadcasts)),
	}
	for _, i := range s.Incidents {
		if i != nil {
			c.Incidents = append(c.Incidents, i.Clone())
		}
	}
	for _, r := range s.Resources {
		if r != nil {
			c.Resources = append(c.Resources, r.Clone())
		}
	}
	for _, o := range s.Officers {
		if o != nil {
			c.Officers = append(c.Officers, o.Clone())
		}
	}
	for _, p := range s.Patrols {
		if p != nil {
			c.Patrols = append(c.Patrols, p.Clone())
		}
	}
	for _, b := range s.Broadcasts {
		if b != nil {
			c.Broadcasts = append(c.Broadcasts, b.Clone())
		}
	}
	return c
}
