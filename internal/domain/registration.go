package domain

import (
	"context"
	"time"
)

// AttendanceStatus is the sub-state of a registration. A registration
// starts as registered; attended, cancelled and no_show are terminal.
type AttendanceStatus string

const (
	AttendanceRegistered AttendanceStatus = "registered"
	AttendanceAttended   AttendanceStatus = "attended"
	AttendanceCancelled  AttendanceStatus = "cancelled"
	AttendanceNoShow     AttendanceStatus = "no_show"
)

// Valid reports whether s is one of the known attendance statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceRegistered, AttendanceAttended, AttendanceCancelled, AttendanceNoShow:
		return true
	}
	return false
}

// Registration is the Event↔Participant join record. The pair
// (EventID, ParticipantID) is unique; the store's unique index is the
// authoritative enforcement point.
type Registration struct {
	EventID          int64            `json:"event_id"`
	ParticipantID    int64            `json:"participant_id"`
	RegistrationDate time.Time        `json:"registration_date"`
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByEventAndParticipant(ctx context.Context, eventID, participantID int64) (*Registration, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*Registration, error)
	ListByParticipantID(ctx context.Context, participantID int64) ([]*Registration, error)
	CountByParticipantID(ctx context.Context, participantID int64) (int, error)
	UpdateStatus(ctx context.Context, eventID, participantID int64, status AttendanceStatus) error
	Delete(ctx context.Context, eventID, participantID int64) error
}

// RegistrationService manages the Event↔Participant relationship.
type RegistrationService interface {
	// RegisterParticipant fails with ConflictError when the pair is
	// already registered or the event is completed or cancelled. On
	// success the registration is created with status registered and the
	// current UTC time.
	RegisterParticipant(ctx context.Context, eventID, participantID int64) (*Registration, error)
	// UnregisterParticipant fails with ConflictError once the event's
	// start date has passed.
	UnregisterParticipant(ctx context.Context, eventID, participantID int64) error
	// MarkAttendance moves a registration out of registered into one of
	// the terminal statuses. Transitions out of a terminal status fail
	// with ConflictError.
	MarkAttendance(ctx context.Context, eventID, participantID int64, status AttendanceStatus) error
	ListRegistrationsByEvent(ctx context.Context, eventID int64) ([]*Registration, error)
}
