package domain

import (
	"context"
	"time"
)

// Participant is a person who registers for events and rates sessions.
// Email is unique across participants.
type Participant struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	JobTitle  string    `json:"job_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParticipantRepository defines storage operations for participants.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *Participant) error
	GetByID(ctx context.Context, id int64) (*Participant, error)
	GetByEmail(ctx context.Context, email string) (*Participant, error)
	List(ctx context.Context, params PaginationParams) ([]*Participant, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, participant *Participant) error
	Delete(ctx context.Context, id int64) error
}

// ParticipantService manages participant records.
type ParticipantService interface {
	// CreateParticipant fails with ConflictError when the email is
	// already taken.
	CreateParticipant(ctx context.Context, participant *Participant) (*Participant, error)
	GetParticipantByID(ctx context.Context, id int64) (*Participant, error)
	ListParticipants(ctx context.Context, params PaginationParams) ([]*Participant, int, error)
	UpdateParticipant(ctx context.Context, participant *Participant) error
	// DeleteParticipant fails with ConflictError while the participant
	// holds any event registration.
	DeleteParticipant(ctx context.Context, id int64) error
}
