package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventmanagement/internal/domain"
)

type registrationService struct {
	uow            domain.UnitOfWork
	eventRepo      domain.EventRepository
	regRepo        domain.RegistrationRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRegistrationService creates the Event↔Participant registration
// service. emailService may be nil to disable confirmation emails.
func NewRegistrationService(
	uow domain.UnitOfWork,
	eventRepo domain.EventRepository,
	regRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		uow:            uow,
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *registrationService) RegisterParticipant(ctx context.Context, eventID, participantID int64) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var reg *domain.Registration
	var emailData *domain.RegistrationConfirmationEmailData

	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		detail, err := tx.Events().GetWithDetails(ctx, eventID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get event: %w", err)
		}
		participant, err := tx.Participants().GetByID(ctx, participantID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get participant: %w", err)
		}

		// Fast-path duplicate check. The unique index on
		// (event_id, participant_id) is the authoritative guard; a
		// concurrent registration slipping past this loop fails at
		// insert with the same ConflictError.
		for _, existing := range detail.Registrations {
			if existing.ParticipantID == participantID {
				return domain.NewConflict("participant %d is already registered for event %d", participantID, eventID)
			}
		}
		if detail.Event.Status == domain.EventStatusCompleted || detail.Event.Status == domain.EventStatusCancelled {
			return domain.NewConflict("cannot register for event %d because it is %s", eventID, detail.Event.Status)
		}

		reg = &domain.Registration{
			EventID:          eventID,
			ParticipantID:    participantID,
			RegistrationDate: time.Now().UTC(),
			AttendanceStatus: domain.AttendanceRegistered,
		}
		if err := tx.Registrations().Create(ctx, reg); err != nil {
			return fmt.Errorf("create registration: %w", err)
		}

		emailData = &domain.RegistrationConfirmationEmailData{
			Email:          participant.Email,
			FirstName:      participant.FirstName,
			EventTitle:     detail.Event.Title,
			EventStartDate: detail.Event.StartDate.Format("2 January 2006"),
			EventEndDate:   detail.Event.EndDate.Format("2 January 2006"),
			LocationName:   detail.Location.Name,
			LocationCity:   detail.Location.City,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Confirmation email is best-effort after commit; a mail failure
	// never unwinds the registration.
	if s.emailService != nil {
		if err := s.emailService.SendRegistrationConfirmation(ctx, emailData); err != nil {
			s.logger.WarnContext(ctx, "registration confirmation email failed",
				"event_id", eventID, "participant_id", participantID, "err", err)
		}
	}
	return reg, nil
}

func (s *registrationService) UnregisterParticipant(ctx context.Context, eventID, participantID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		detail, err := tx.Events().GetWithDetails(ctx, eventID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get event: %w", err)
		}

		var found bool
		for _, existing := range detail.Registrations {
			if existing.ParticipantID == participantID {
				found = true
				break
			}
		}
		if !found {
			return domain.NewNotFound("registration", fmt.Sprintf("event %d, participant %d", eventID, participantID))
		}
		if !detail.Event.StartDate.After(time.Now().UTC()) {
			return domain.NewConflict("cannot unregister from event %d because it has already started", eventID)
		}

		if err := tx.Registrations().Delete(ctx, eventID, participantID); err != nil {
			return fmt.Errorf("delete registration: %w", err)
		}
		return nil
	})
}

func (s *registrationService) MarkAttendance(ctx context.Context, eventID, participantID int64, status domain.AttendanceStatus) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !status.Valid() || status == domain.AttendanceRegistered {
		return domain.NewValidation("attendance_status",
			fmt.Sprintf("attendance can only move to attended, cancelled or no_show, not %q", status))
	}

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		reg, err := tx.Registrations().GetByEventAndParticipant(ctx, eventID, participantID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get registration: %w", err)
		}
		// attended, cancelled and no_show are terminal.
		if reg.AttendanceStatus != domain.AttendanceRegistered {
			return domain.NewConflict("registration for event %d, participant %d is already %s",
				eventID, participantID, reg.AttendanceStatus)
		}
		if err := tx.Registrations().UpdateStatus(ctx, eventID, participantID, status); err != nil {
			return fmt.Errorf("update registration status: %w", err)
		}
		return nil
	})
}

func (s *registrationService) ListRegistrationsByEvent(ctx context.Context, eventID int64) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	regs, err := s.regRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
