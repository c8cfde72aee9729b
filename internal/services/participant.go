package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventmanagement/internal/domain"
)

type participantService struct {
	uow             domain.UnitOfWork
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

// NewParticipantService creates the participant service.
func NewParticipantService(uow domain.UnitOfWork, participantRepo domain.ParticipantRepository, timeout time.Duration) domain.ParticipantService {
	return &participantService{
		uow:             uow,
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

func (s *participantService) CreateParticipant(ctx context.Context, participant *domain.Participant) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participant.Email = strings.TrimSpace(strings.ToLower(participant.Email))
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if participant.Email == "" {
			return domain.NewValidation("email", "email is required")
		}
		if _, err := tx.Participants().GetByEmail(ctx, participant.Email); err == nil {
			return domain.NewConflict("participant with email %s already exists", participant.Email)
		} else if !domain.IsNotFound(err) {
			return fmt.Errorf("get participant by email: %w", err)
		}

		now := time.Now()
		participant.CreatedAt = now
		participant.UpdatedAt = now
		if err := tx.Participants().Create(ctx, participant); err != nil {
			return fmt.Errorf("create participant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *participantService) GetParticipantByID(ctx context.Context, id int64) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.participantRepo.GetByID(ctx, id)
}

func (s *participantService) ListParticipants(ctx context.Context, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participants, err := s.participantRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list participants: %w", err)
	}
	total, err := s.participantRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count participants: %w", err)
	}
	return participants, total, nil
}

func (s *participantService) UpdateParticipant(ctx context.Context, participant *domain.Participant) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	participant.Email = strings.TrimSpace(strings.ToLower(participant.Email))
	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		existing, err := tx.Participants().GetByID(ctx, participant.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get participant: %w", err)
		}

		if !strings.EqualFold(existing.Email, participant.Email) {
			other, err := tx.Participants().GetByEmail(ctx, participant.Email)
			if err == nil && other.ID != participant.ID {
				return domain.NewConflict("another participant with email %s already exists", participant.Email)
			}
			if err != nil && !domain.IsNotFound(err) {
				return fmt.Errorf("get participant by email: %w", err)
			}
		}

		existing.FirstName = participant.FirstName
		existing.LastName = participant.LastName
		existing.Email = participant.Email
		existing.Company = participant.Company
		existing.JobTitle = participant.JobTitle
		existing.UpdatedAt = time.Now()

		if err := tx.Participants().Update(ctx, existing); err != nil {
			return fmt.Errorf("update participant: %w", err)
		}
		return nil
	})
}

func (s *participantService) DeleteParticipant(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if _, err := tx.Participants().GetByID(ctx, id); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get participant: %w", err)
		}
		count, err := tx.Registrations().CountByParticipantID(ctx, id)
		if err != nil {
			return fmt.Errorf("count registrations: %w", err)
		}
		if count > 0 {
			return domain.NewConflict("cannot delete participant %d: registered for %d event(s)", id, count)
		}
		if err := tx.Participants().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete participant: %w", err)
		}
		return nil
	})
}
