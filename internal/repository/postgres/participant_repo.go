package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"eventmanagement/internal/domain"
)

type participantRepository struct {
	db DBTX
}

func NewParticipantRepository(db DBTX) domain.ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	query := `
		INSERT INTO participants (first_name, last_name, email, company, job_title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		participant.FirstName, participant.LastName, participant.Email,
		participant.Company, participant.JobTitle, participant.CreatedAt, participant.UpdatedAt).
		Scan(&participant.ID)
	return writeError(err)
}

func (r *participantRepository) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	query := `
		SELECT id, first_name, last_name, email, company, job_title, created_at, updated_at
		FROM participants
		WHERE id = $1
	`
	p := &domain.Participant{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Company, &p.JobTitle, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("participant", id)
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) GetByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	query := `
		SELECT id, first_name, last_name, email, company, job_title, created_at, updated_at
		FROM participants
		WHERE LOWER(email) = $1
	`
	p := &domain.Participant{}
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(email)).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Company, &p.JobTitle, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("participant", email)
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Participant, error) {
	query := `
		SELECT id, first_name, last_name, email, company, job_title, created_at, updated_at
		FROM participants
		ORDER BY last_name, first_name, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*domain.Participant
	for rows.Next() {
		p := &domain.Participant{}
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Company, &p.JobTitle, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, nil
}

func (r *participantRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *participantRepository) Update(ctx context.Context, participant *domain.Participant) error {
	query := `
		UPDATE participants
		SET first_name = $1, last_name = $2, email = $3, company = $4, job_title = $5, updated_at = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		participant.FirstName, participant.LastName, participant.Email,
		participant.Company, participant.JobTitle, participant.UpdatedAt, participant.ID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("participant", participant.ID)
	}
	return nil
}

func (r *participantRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("participant", id)
	}
	return nil
}
