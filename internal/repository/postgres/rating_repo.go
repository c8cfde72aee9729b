package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmanagement/internal/domain"
)

type ratingRepository struct {
	db DBTX
}

func NewRatingRepository(db DBTX) domain.RatingRepository {
	return &ratingRepository{db: db}
}

const ratingColumns = `id, session_id, participant_id, score, comment, created_at, updated_at`

func scanRating(row interface{ Scan(...any) error }) (*domain.Rating, error) {
	rt := &domain.Rating{}
	err := row.Scan(&rt.ID, &rt.SessionID, &rt.ParticipantID, &rt.Score,
		&rt.Comment, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Create inserts the rating. A duplicate (session_id, participant_id)
// pair hits the unique index and surfaces as ConflictError.
func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (session_id, participant_id, score, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		rating.SessionID, rating.ParticipantID, rating.Score, rating.Comment,
		rating.CreatedAt, rating.UpdatedAt).
		Scan(&rating.ID)
	return writeError(err)
}

func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`
	rating, err := scanRating(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("rating", id)
		}
		return nil, err
	}
	return rating, nil
}

func (r *ratingRepository) ListBySessionID(ctx context.Context, sessionID int64) ([]*domain.Rating, error) {
	return r.list(ctx, `WHERE session_id = $1`, sessionID)
}

func (r *ratingRepository) ListByParticipantID(ctx context.Context, participantID int64) ([]*domain.Rating, error) {
	return r.list(ctx, `WHERE participant_id = $1`, participantID)
}

func (r *ratingRepository) list(ctx context.Context, where string, arg any) ([]*domain.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings ` + where + ` ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []*domain.Rating{}
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageBySessionID computes the mean score in SQL. ok is false when the
// session has no ratings (AVG over zero rows is NULL).
func (r *ratingRepository) AverageBySessionID(ctx context.Context, sessionID int64) (float64, bool, error) {
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT AVG(score) FROM ratings WHERE session_id = $1`, sessionID).
		Scan(&avg)
	if err != nil {
		return 0, false, err
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}

func (r *ratingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	query := `
		UPDATE ratings
		SET session_id = $1, participant_id = $2, score = $3, comment = $4, updated_at = $5
		WHERE id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		rating.SessionID, rating.ParticipantID, rating.Score, rating.Comment,
		rating.UpdatedAt, rating.ID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("rating", rating.ID)
	}
	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("rating", id)
	}
	return nil
}
