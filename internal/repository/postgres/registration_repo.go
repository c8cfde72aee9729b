package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventmanagement/internal/domain"
)

type registrationRepository struct {
	db DBTX
}

func NewRegistrationRepository(db DBTX) domain.RegistrationRepository {
	return &registrationRepository{db: db}
}

func regKey(eventID, participantID int64) string {
	return fmt.Sprintf("event %d, participant %d", eventID, participantID)
}

// Create inserts the registration. A duplicate (event_id, participant_id)
// pair hits the unique index and surfaces as ConflictError.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO event_registrations (event_id, participant_id, registration_date, attendance_status)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		reg.EventID, reg.ParticipantID, reg.RegistrationDate, reg.AttendanceStatus)
	return writeError(err)
}

func (r *registrationRepository) GetByEventAndParticipant(ctx context.Context, eventID, participantID int64) (*domain.Registration, error) {
	query := `
		SELECT event_id, participant_id, registration_date, attendance_status
		FROM event_registrations
		WHERE event_id = $1 AND participant_id = $2
	`
	reg := &domain.Registration{}
	err := r.db.QueryRowContext(ctx, query, eventID, participantID).
		Scan(&reg.EventID, &reg.ParticipantID, &reg.RegistrationDate, &reg.AttendanceStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("registration", regKey(eventID, participantID))
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Registration, error) {
	return r.list(ctx, `WHERE event_id = $1`, eventID)
}

func (r *registrationRepository) ListByParticipantID(ctx context.Context, participantID int64) ([]*domain.Registration, error) {
	return r.list(ctx, `WHERE participant_id = $1`, participantID)
}

func (r *registrationRepository) list(ctx context.Context, where string, arg any) ([]*domain.Registration, error) {
	query := `
		SELECT event_id, participant_id, registration_date, attendance_status
		FROM event_registrations ` + where + ` ORDER BY registration_date`
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.Registration{}
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.EventID, &reg.ParticipantID, &reg.RegistrationDate, &reg.AttendanceStatus); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) CountByParticipantID(ctx context.Context, participantID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_registrations WHERE participant_id = $1`, participantID).
		Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, eventID, participantID int64, status domain.AttendanceStatus) error {
	query := `
		UPDATE event_registrations
		SET attendance_status = $1
		WHERE event_id = $2 AND participant_id = $3
	`
	res, err := r.db.ExecContext(ctx, query, status, eventID, participantID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("registration", regKey(eventID, participantID))
	}
	return nil
}

func (r *registrationRepository) Delete(ctx context.Context, eventID, participantID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM event_registrations WHERE event_id = $1 AND participant_id = $2`,
		eventID, participantID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("registration", regKey(eventID, participantID))
	}
	return nil
}
