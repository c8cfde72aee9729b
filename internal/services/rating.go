package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

type ratingService struct {
	uow            domain.UnitOfWork
	ratingRepo     domain.RatingRepository
	contextTimeout time.Duration
}

// NewRatingService creates the post-session rating service.
func NewRatingService(uow domain.UnitOfWork, ratingRepo domain.RatingRepository, timeout time.Duration) domain.RatingService {
	return &ratingService{
		uow:            uow,
		ratingRepo:     ratingRepo,
		contextTimeout: timeout,
	}
}

func (s *ratingService) CreateRating(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if err := validateScore(rating.Score); err != nil {
			return err
		}
		if _, err := tx.Sessions().GetByID(ctx, rating.SessionID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get session: %w", err)
		}
		if _, err := tx.Participants().GetByID(ctx, rating.ParticipantID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get participant: %w", err)
		}

		now := time.Now()
		rating.CreatedAt = now
		rating.UpdatedAt = now
		// One rating per (session, participant): the store's unique
		// index raises the conflict here on a duplicate.
		if err := tx.Ratings().Create(ctx, rating); err != nil {
			if domain.IsConflict(err) {
				return domain.NewConflict("participant %d has already rated session %d",
					rating.ParticipantID, rating.SessionID)
			}
			return fmt.Errorf("create rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) UpdateRating(ctx context.Context, rating *domain.Rating) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var updated bool
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		existing, err := tx.Ratings().GetByID(ctx, rating.ID)
		if err != nil {
			// Missing rating is reported as not-updated, not as an
			// error.
			if domain.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get rating: %w", err)
		}
		if err := validateScore(rating.Score); err != nil {
			return err
		}

		// The rated session and participant are fixed at creation;
		// only score and comment change.
		existing.Score = rating.Score
		existing.Comment = rating.Comment
		existing.UpdatedAt = time.Now()

		if err := tx.Ratings().Update(ctx, existing); err != nil {
			return fmt.Errorf("update rating: %w", err)
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var deleted bool
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if _, err := tx.Ratings().GetByID(ctx, id); err != nil {
			if domain.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get rating: %w", err)
		}
		if err := tx.Ratings().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete rating: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *ratingService) GetRatingsBySession(ctx context.Context, sessionID int64) ([]*domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.ratingRepo.ListBySessionID(ctx, sessionID)
}

func (s *ratingService) GetRatingsByParticipant(ctx context.Context, participantID int64) ([]*domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.ratingRepo.ListByParticipantID(ctx, participantID)
}

func (s *ratingService) GetAverageRatingForSession(ctx context.Context, sessionID int64) (float64, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.ratingRepo.AverageBySessionID(ctx, sessionID)
}
