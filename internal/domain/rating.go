package domain

import (
	"context"
	"time"
)

// Rating score bounds.
const (
	MinScore = 1
	MaxScore = 5
)

// Rating is a participant's score for a session, unique per
// (SessionID, ParticipantID).
type Rating struct {
	ID            int64     `json:"id"`
	SessionID     int64     `json:"session_id"`
	ParticipantID int64     `json:"participant_id"`
	Score         int       `json:"score"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RatingRepository defines storage operations for ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *Rating) error
	GetByID(ctx context.Context, id int64) (*Rating, error)
	ListBySessionID(ctx context.Context, sessionID int64) ([]*Rating, error)
	ListByParticipantID(ctx context.Context, participantID int64) ([]*Rating, error)
	// AverageBySessionID returns ok=false when the session has no
	// ratings.
	AverageBySessionID(ctx context.Context, sessionID int64) (avg float64, ok bool, err error)
	Update(ctx context.Context, rating *Rating) error
	Delete(ctx context.Context, id int64) error
}

// RatingService manages post-session ratings.
type RatingService interface {
	// CreateRating validates the score range and that the session and
	// participant exist; a duplicate (session, participant) pair fails
	// with ConflictError.
	CreateRating(ctx context.Context, rating *Rating) (*Rating, error)
	// UpdateRating returns false without error when the rating does not
	// exist.
	UpdateRating(ctx context.Context, rating *Rating) (bool, error)
	// DeleteRating returns false without error when the rating does not
	// exist.
	DeleteRating(ctx context.Context, id int64) (bool, error)
	GetRatingsBySession(ctx context.Context, sessionID int64) ([]*Rating, error)
	GetRatingsByParticipant(ctx context.Context, participantID int64) ([]*Rating, error)
	// GetAverageRatingForSession returns ok=false, not zero, when the
	// session has no ratings.
	GetAverageRatingForSession(ctx context.Context, sessionID int64) (avg float64, ok bool, err error)
}
