package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmanagement/internal/domain"
)

type speakerRepository struct {
	db DBTX
}

func NewSpeakerRepository(db DBTX) domain.SpeakerRepository {
	return &speakerRepository{db: db}
}

func (r *speakerRepository) Create(ctx context.Context, speaker *domain.Speaker) error {
	query := `
		INSERT INTO speakers (first_name, last_name, bio, email, company, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		speaker.FirstName, speaker.LastName, speaker.Bio, speaker.Email,
		speaker.Company, speaker.CreatedAt, speaker.UpdatedAt).
		Scan(&speaker.ID)
	return writeError(err)
}

func (r *speakerRepository) GetByID(ctx context.Context, id int64) (*domain.Speaker, error) {
	query := `
		SELECT id, first_name, last_name, bio, email, company, created_at, updated_at
		FROM speakers
		WHERE id = $1
	`
	s := &domain.Speaker{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.FirstName, &s.LastName, &s.Bio, &s.Email, &s.Company, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("speaker", id)
		}
		return nil, err
	}
	return s, nil
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	query := `
		SELECT id, first_name, last_name, bio, email, company, created_at, updated_at
		FROM speakers
		ORDER BY last_name, first_name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var speakers []*domain.Speaker
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
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	return speakers, nil
}

func (r *speakerRepository) Update(ctx context.Context, speaker *domain.Speaker) error {
	query := `
		UPDATE speakers
		SET first_name = $1, last_name = $2, bio = $3, email = $4, company = $5, updated_at = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		speaker.FirstName, speaker.LastName, speaker.Bio, speaker.Email,
		speaker.Company, speaker.UpdatedAt, speaker.ID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("speaker", speaker.ID)
	}
	return nil
}

func (r *speakerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM speakers WHERE id = $1`, id)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("speaker", id)
	}
	return nil
}
