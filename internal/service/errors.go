package service

import "errors"

var (
	ErrNotLoggedIn      = errors.New("no officer is logged in")
	ErrNotBookedOn      = errors.New("callsign is not booked on")
	ErrCrewMismatch     = errors.New("logged in officer is not part of the booked on crew")
	ErrCannotTerminate  = errors.New("shift cannot be terminated from the current status")
	ErrInvalidShift     = errors.New("shift end must be after shift start")
	ErrInvalidStatus    = errors.New("unknown resource status")
	ErrStatusUnchanged  = errors.New("resource already has this status")
	ErrReasonRequired   = errors.New("a reason is required to leave an incident status")
	ErrIncidentRequired = errors.New("an incident is required for this status")
	ErrIncidentNotFound = errors.New("incident not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrOfficerNotFound  = errors.New("officer not found")
	ErrInvalidSyncMode  = errors.New("sync mode is missing its patrol group or bounding box")
)
