package models

// SyncModeKind - источник данных для синхронизации
type SyncModeKind string

const (
	SyncModeNone        SyncModeKind = "none"
	SyncModePatrolGroup SyncModeKind = "patrol_group"
	SyncModeMap         SyncModeKind = "map"
)

type SyncMode struct {
	Kind        SyncModeKind `json:"kind"`
	PatrolGroup string       `json:"patrolGroup,omitempty"`
	BoundingBox *BoundingBox `json:"boundingBox,omitempty"`
}

func NoSync() SyncMode {
	return SyncMode{Kind: SyncModeNone}
}

func PatrolGroupSync(patrolGroup string) SyncMode {
	return SyncMode{Kind: SyncModePatrolGroup, PatrolGroup: patrolGroup}
}

func MapSync(box BoundingBox) SyncMode {
	return SyncMode{Kind: SyncModeMap, BoundingBox: &box}
}

func (m SyncMode) Equal(other SyncMode) bool {
	if m.Kind != other.Kind {
		return false
	}
	switch m.Kind {
	case SyncModePatrolGroup:
		return m.PatrolGroup == other.PatrolGroup
	case SyncModeMap:
		if m.BoundingBox == nil || other.BoundingBox == nil {
			return m.BoundingBox == other.BoundingBox
		}
		return *m.BoundingBox == *other.BoundingBox
	}
	return true
}

// Validate проверяет, что у режима заполнены нужные параметры
func (m SyncMode) Validate() bool {
	switch m.Kind {
	case SyncModeNone:
		return true
	case SyncModePatrolGroup:
		return m.PatrolGroup != ""
	case SyncModeMap:
		return m.BoundingBox != nil
	}
	return false
}
