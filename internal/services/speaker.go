package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

type speakerService struct {
	uow            domain.UnitOfWork
	speakerRepo    domain.SpeakerRepository
	contextTimeout time.Duration
}

// NewSpeakerService creates the speaker service.
func NewSpeakerService(uow domain.UnitOfWork, speakerRepo domain.SpeakerRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		uow:            uow,
		speakerRepo:    speakerRepo,
		contextTimeout: timeout,
	}
}

func (s *speakerService) CreateSpeaker(ctx context.Context, speaker *domain.Speaker) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if speaker.FirstName == "" && speaker.LastName == "" {
			return domain.NewValidation("name", "speaker name is required")
		}
		now := time.Now()
		speaker.CreatedAt = now
		speaker.UpdatedAt = now
		if err := tx.Speakers().Create(ctx, speaker); err != nil {
			return fmt.Errorf("create speaker: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return speaker, nil
}

func (s *speakerService) GetSpeakerByID(ctx context.Context, id int64) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.speakerRepo.GetByID(ctx, id)
}

func (s *speakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.speakerRepo.List(ctx)
}

func (s *speakerService) UpdateSpeaker(ctx context.Context, speaker *domain.Speaker) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		existing, err := tx.Speakers().GetByID(ctx, speaker.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get speaker: %w", err)
		}

		existing.FirstName = speaker.FirstName
		existing.LastName = speaker.LastName
		existing.Bio = speaker.Bio
		existing.Email = speaker.Email
		existing.Company = speaker.Company
		existing.UpdatedAt = time.Now()

		if err := tx.Speakers().Update(ctx, existing); err != nil {
			return fmt.Errorf("update speaker: %w", err)
		}
		return nil
	})
}

func (s *speakerService) DeleteSpeaker(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var deleted bool
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if _, err := tx.Speakers().GetByID(ctx, id); err != nil {
			if domain.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get speaker: %w", err)
		}
		if err := tx.Speakers().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete speaker: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
