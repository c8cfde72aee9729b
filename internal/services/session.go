package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

type sessionService struct {
	uow            domain.UnitOfWork
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
}

// NewSessionService creates the session service.
func NewSessionService(uow domain.UnitOfWork, sessionRepo domain.SessionRepository, timeout time.Duration) domain.SessionService {
	return &sessionService{
		uow:            uow,
		sessionRepo:    sessionRepo,
		contextTimeout: timeout,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if err := validateSessionTimes(session.StartTime, session.EndTime); err != nil {
			return err
		}
		if _, err := tx.Events().GetByID(ctx, session.EventID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get event: %w", err)
		}
		if _, err := tx.Rooms().GetByID(ctx, session.RoomID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get room: %w", err)
		}

		now := time.Now()
		session.CreatedAt = now
		session.UpdatedAt = now
		if err := tx.Sessions().Create(ctx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, id int64) (*domain.SessionDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.sessionRepo.GetWithDetails(ctx, id)
}

func (s *sessionService) ListSessionsByEvent(ctx context.Context, eventID int64) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.sessionRepo.ListByEventID(ctx, eventID)
}

func (s *sessionService) UpdateSession(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if err := validateSessionTimes(session.StartTime, session.EndTime); err != nil {
			return err
		}
		existing, err := tx.Sessions().GetByID(ctx, session.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get session: %w", err)
		}
		if session.RoomID != existing.RoomID {
			if _, err := tx.Rooms().GetByID(ctx, session.RoomID); err != nil {
				if domain.IsNotFound(err) {
					return err
				}
				return fmt.Errorf("get room: %w", err)
			}
		}

		existing.Title = session.Title
		existing.Description = session.Description
		existing.StartTime = session.StartTime
		existing.EndTime = session.EndTime
		existing.RoomID = session.RoomID
		existing.UpdatedAt = time.Now()

		if err := tx.Sessions().Update(ctx, existing); err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		return nil
	})
}

func (s *sessionService) DeleteSession(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var deleted bool
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if _, err := tx.Sessions().GetByID(ctx, id); err != nil {
			if domain.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get session: %w", err)
		}
		if err := tx.Sessions().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *sessionService) AssignSpeaker(ctx context.Context, sessionID, speakerID int64, role string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if _, err := tx.Sessions().GetByID(ctx, sessionID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get session: %w", err)
		}
		if _, err := tx.Speakers().GetByID(ctx, speakerID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get speaker: %w", err)
		}

		assignment := &domain.SessionSpeaker{SessionID: sessionID, SpeakerID: speakerID, Role: role}
		if err := tx.Sessions().AssignSpeaker(ctx, assignment); err != nil {
			if domain.IsConflict(err) {
				return domain.NewConflict("speaker %d is already assigned to session %d", speakerID, sessionID)
			}
			return fmt.Errorf("assign speaker: %w", err)
		}
		return nil
	})
}

func (s *sessionService) RemoveSpeaker(ctx context.Context, sessionID, speakerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if err := tx.Sessions().RemoveSpeaker(ctx, sessionID, speakerID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("remove speaker: %w", err)
		}
		return nil
	})
}
