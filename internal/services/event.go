package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

type eventService struct {
	uow            domain.UnitOfWork
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates the event lifecycle service. Mutations run
// through the unit of work; reads go straight to the pool-bound
// repository.
func NewEventService(uow domain.UnitOfWork, eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		uow:            uow,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var detail *domain.EventDetail
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if err := validateEventDates(event.StartDate, event.EndDate); err != nil {
			return err
		}
		category, err := tx.Categories().GetByID(ctx, event.CategoryID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get category: %w", err)
		}
		location, err := tx.Locations().GetByID(ctx, event.LocationID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get location: %w", err)
		}

		now := time.Now()
		event.Status = domain.EventStatusDraft
		event.CreatedAt = now
		event.UpdatedAt = now
		if err := tx.Events().Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}

		detail = &domain.EventDetail{
			Event:         event,
			Category:      category,
			Location:      location,
			Registrations: []*domain.Registration{},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id int64) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	detail, err := s.eventRepo.GetWithDetails(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return detail, nil
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.Find(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("find events: %w", err)
	}
	total, err := s.eventRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if err := validateEventDates(event.StartDate, event.EndDate); err != nil {
			return err
		}
		existing, err := tx.Events().GetByID(ctx, event.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get event: %w", err)
		}
		if _, err := tx.Categories().GetByID(ctx, event.CategoryID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get category: %w", err)
		}
		if _, err := tx.Locations().GetByID(ctx, event.LocationID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get location: %w", err)
		}

		existing.Title = event.Title
		existing.Description = event.Description
		existing.StartDate = event.StartDate
		existing.EndDate = event.EndDate
		existing.CategoryID = event.CategoryID
		existing.LocationID = event.LocationID
		if event.Status != "" {
			if !event.Status.Valid() {
				return domain.NewValidation("status", fmt.Sprintf("unknown event status %q", event.Status))
			}
			existing.Status = event.Status
		}
		existing.UpdatedAt = time.Now()

		if err := tx.Events().Update(ctx, existing); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		event, err := tx.Events().GetByID(ctx, id)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get event: %w", err)
		}
		if event.Status == domain.EventStatusCompleted {
			return domain.NewConflict("event %d is completed and cannot be deleted", id)
		}
		// Dependent sessions and registrations cascade in the store.
		if err := tx.Events().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}
