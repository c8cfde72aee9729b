package domain

import (
	"context"
	"time"
)

// Speaker presents sessions. Assigned to sessions via SessionSpeaker.
type Speaker struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio,omitempty"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpeakerRepository defines storage operations for speakers.
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id int64) (*Speaker, error)
	List(ctx context.Context) ([]*Speaker, error)
	Update(ctx context.Context, speaker *Speaker) error
	Delete(ctx context.Context, id int64) error
}

// SpeakerService manages speaker records.
type SpeakerService interface {
	CreateSpeaker(ctx context.Context, speaker *Speaker) (*Speaker, error)
	GetSpeakerByID(ctx context.Context, id int64) (*Speaker, error)
	ListSpeakers(ctx context.Context) ([]*Speaker, error)
	UpdateSpeaker(ctx context.Context, speaker *Speaker) error
	DeleteSpeaker(ctx context.Context, id int64) (bool, error)
}
