package models

import "slices"

// ResourceStatus - статус позывного (ресурса)
type ResourceStatus string

const (
	// Общие статусы
	StatusUnavailable ResourceStatus = "Unavailable"
	StatusOnAir       ResourceStatus = "On Air"
	StatusMealBreak   ResourceStatus = "Meal Break"
	StatusTrafficStop ResourceStatus = "Traffic Stop"
	StatusCourt       ResourceStatus = "Court"
	StatusAtStation   ResourceStatus = "At Station"
	StatusOnCall      ResourceStatus = "On Call"
	StatusInquiries1  ResourceStatus = "Inquiries1"
	StatusDuress      ResourceStatus = "Duress"
	StatusOffDuty     ResourceStatus = "Off Duty"

	// Статусы, связанные с текущим инцидентом
	StatusProceeding ResourceStatus = "Proceeding"
	StatusAtIncident ResourceStatus = "At Incident"
	StatusFinalise   ResourceStatus = "Finalise"
	StatusInquiries2 ResourceStatus = "Inquiries2"
)

// DefaultResourceStatus используется, когда статус неизвестен
const DefaultResourceStatus = StatusUnavailable

var (
	incidentStatuses = []ResourceStatus{
		StatusProceeding,
		StatusAtIncident,
		StatusFinalise,
		StatusInquiries2,
	}

	generalStatuses = []ResourceStatus{
		StatusUnavailable,
		StatusOnAir,
		StatusMealBreak,
		StatusTrafficStop,
		StatusCourt,
		StatusAtStation,
		StatusOnCall,
		StatusInquiries1,
	}
)

// AllResourceStatuses возвращает все выбираемые статусы в порядке отображения
func AllResourceStatuses() []ResourceStatus {
	return append(slices.Clone(generalStatuses), incidentStatuses...)
}

// IncidentResourceStatuses возвращает статусы, связанные с инцидентом
func IncidentResourceStatuses() []ResourceStatus {
	return slices.Clone(incidentStatuses)
}

// GeneralResourceStatuses возвращает статусы, не связанные с инцидентом
func GeneralResourceStatuses() []ResourceStatus {
	return slices.Clone(generalStatuses)
}

func (s ResourceStatus) IsValid() bool {
	return s == StatusDuress || s == StatusOffDuty || slices.Contains(AllResourceStatuses(), s)
}

func (s ResourceStatus) IsIncidentStatus() bool {
	return slices.Contains(incidentStatuses, s)
}

func (s ResourceStatus) IsDuress() bool {
	return s == StatusDuress
}

// CanTerminate сообщает, можно ли завершить смену из текущего статуса
func (s ResourceStatus) CanTerminate() bool {
	return s == StatusOffDuty || slices.Contains(generalStatuses, s)
}

// CanCreateIncident сообщает, можно ли создать инцидент из текущего статуса
func (s ResourceStatus) CanCreateIncident() bool {
	return !s.IsIncidentStatus()
}

// CanChangeTo проверяет переход статуса. Переход с инцидентного статуса на общий
// разрешён, но требует указать причину; повтор текущего статуса запрещён.
func (s ResourceStatus) CanChangeTo(next ResourceStatus) (allowed bool, requiresReason bool) {
	if s.IsChangingToGeneralStatus(next) {
		return true, true
	}
	if s != next {
		return true, false
	}
	return false, false
}

// IsChangingToGeneralStatus сообщает, уходит ли ресурс с инцидентного статуса
func (s ResourceStatus) IsChangingToGeneralStatus(next ResourceStatus) bool {
	return s.IsIncidentStatus() && !next.IsIncidentStatus()
}
