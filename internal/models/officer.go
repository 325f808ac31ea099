package models

import "slices"

// Officer - сотрудник. ID совпадает с табельным номером (payroll id).
type Officer struct {
	ID             string   `json:"id" validate:"required"`
	Username       string   `json:"username,omitempty"`
	GivenName      string   `json:"givenName,omitempty"`
	MiddleNames    string   `json:"middleNames,omitempty"`
	FamilyName     string   `json:"familyName,omitempty"`
	EmployeeNumber string   `json:"employeeNumber,omitempty"`
	Rank           string   `json:"rank,omitempty"`
	Region         string   `json:"region,omitempty"`
	Station        string   `json:"station,omitempty"`
	PatrolGroup    string   `json:"patrolGroup,omitempty"`
	RadioID        string   `json:"radioId,omitempty"`
	ContactNumber  string   `json:"contactNumber,omitempty"`
	LicenceTypeID  string   `json:"licenceTypeId,omitempty"`
	Capabilities   []string `json:"capabilities,omitempty"`
	Remarks        string   `json:"remarks,omitempty"`
}

func (o *Officer) Clone() *Officer {
	c := *o
	c.Capabilities = slices.Clone(o.Capabilities)
	return &c
}

// DisplayName возвращает имя в формате "Фамилия, Имя"
func (o *Officer) DisplayName() string {
	switch {
	case o.FamilyName != "" && o.GivenName != "":
		return o.FamilyName + ", " + o.GivenName
	case o.FamilyName != "":
		return o.FamilyName
	default:
		return o.GivenName
	}
}
