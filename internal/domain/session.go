package domain

import (
	"context"
	"time"
)

// Session is a scheduled talk within an event, held in a room. EndTime is
// strictly after StartTime on any committed row.
type Session struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	EventID     int64     `json:"event_id"`
	RoomID      int64     `json:"room_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SessionSpeaker is the Session↔Speaker assignment, unique per pair, with
// an optional role label ("host", "panelist", ...).
type SessionSpeaker struct {
	SessionID int64  `json:"session_id"`
	SpeakerID int64  `json:"speaker_id"`
	Role      string `json:"role,omitempty"`
}

// SessionDetail is a session hydrated with its room and assigned speakers.
type SessionDetail struct {
	Session  *Session   `json:"session"`
	Room     *Room      `json:"room"`
	Speakers []*Speaker `json:"speakers"`
}

// SessionRepository defines storage operations for sessions and their
// speaker assignments.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id int64) (*Session, error)
	GetWithDetails(ctx context.Context, id int64) (*SessionDetail, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*Session, error)
	CountByRoomID(ctx context.Context, roomID int64) (int, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id int64) error

	AssignSpeaker(ctx context.Context, assignment *SessionSpeaker) error
	RemoveSpeaker(ctx context.Context, sessionID, speakerID int64) error
	ListSpeakers(ctx context.Context, sessionID int64) ([]*Speaker, error)
}

// SessionService manages sessions and speaker assignments.
type SessionService interface {
	// CreateSession validates end > start and that the event and room
	// exist.
	CreateSession(ctx context.Context, session *Session) (*Session, error)
	GetSessionByID(ctx context.Context, id int64) (*SessionDetail, error)
	ListSessionsByEvent(ctx context.Context, eventID int64) ([]*Session, error)
	UpdateSession(ctx context.Context, session *Session) error
	DeleteSession(ctx context.Context, id int64) (bool, error)
	// AssignSpeaker fails with ConflictError when the speaker is already
	// assigned to the session.
	AssignSpeaker(ctx context.Context, sessionID, speakerID int64, role string) error
	RemoveSpeaker(ctx context.Context, sessionID, speakerID int64) error
}
