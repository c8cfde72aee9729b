package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmanagement/internal/domain"
)

type sessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) domain.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `id, title, description, start_time, end_time, event_id, room_id, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (*domain.Session, error) {
	s := &domain.Session{}
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.StartTime, &s.EndTime,
		&s.EventID, &s.RoomID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (title, description, start_time, end_time, event_id, room_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		session.Title, session.Description, session.StartTime, session.EndTime,
		session.EventID, session.RoomID, session.CreatedAt, session.UpdatedAt).
		Scan(&session.ID)
	return writeError(err)
}

func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	session, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("session", id)
		}
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) GetWithDetails(ctx context.Context, id int64) (*domain.SessionDetail, error) {
	query := `
		SELECT s.id, s.title, s.description, s.start_time, s.end_time, s.event_id, s.room_id,
		       s.created_at, s.updated_at,
		       r.id, r.name, r.capacity, r.location_id, r.created_at, r.updated_at
		FROM sessions s
		JOIN rooms r ON r.id = s.room_id
		WHERE s.id = $1
	`
	s := &domain.Session{}
	room := &domain.Room{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Title, &s.Description, &s.StartTime, &s.EndTime, &s.EventID, &s.RoomID,
		&s.CreatedAt, &s.UpdatedAt,
		&room.ID, &room.Name, &room.Capacity, &room.LocationID, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("session", id)
		}
		return nil, err
	}

	speakers, err := r.ListSpeakers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.SessionDetail{Session: s, Room: room, Speakers: speakers}, nil
}

func (r *sessionRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE event_id = $1 ORDER BY start_time, id`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (r *sessionRepository) CountByRoomID(ctx context.Context, roomID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE room_id = $1`, roomID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) error {
	query := `
		UPDATE sessions
		SET title = $1, description = $2, start_time = $3, end_time = $4, room_id = $5, updated_at = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		session.Title, session.Description, session.StartTime, session.EndTime,
		session.RoomID, session.UpdatedAt, session.ID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("session", session.ID)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("session", id)
	}
	return nil
}

func (r *sessionRepository) AssignSpeaker(ctx context.Context, assignment *domain.SessionSpeaker) error {
	query := `
		INSERT INTO session_speakers (session_id, speaker_id, role)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, assignment.SessionID, assignment.SpeakerID, assignment.Role)
	return writeError(err)
}

func (r *sessionRepository) RemoveSpeaker(ctx context.Context, sessionID, speakerID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM session_speakers WHERE session_id = $1 AND speaker_id = $2`,
		sessionID, speakerID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("session speaker", speakerID)
	}
	return nil
}

func (r *sessionRepository) ListSpeakers(ctx context.Context, sessionID int64) ([]*domain.Speaker, error) {
	query := `
		SELECT sp.id, sp.first_name, sp.last_name, sp.bio, sp.email, sp.company, sp.created_at, sp.updated_at
		FROM speakers sp
		JOIN session_speakers ss ON ss.speaker_id = sp.id
		WHERE ss.session_id = $1
		ORDER BY sp.last_name, sp.first_name
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	speakers := []*domain.Speaker{}
	for rows.Next() {
		s := &domain.Speaker{}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Bio, &s.Email, &s.Company, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return speakers, nil
}
