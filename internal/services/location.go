package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

type locationService struct {
	uow            domain.UnitOfWork
	locationRepo   domain.LocationRepository
	contextTimeout time.Duration
}

// NewLocationService creates the location service.
func NewLocationService(uow domain.UnitOfWork, locationRepo domain.LocationRepository, timeout time.Duration) domain.LocationService {
	return &locationService{
		uow:            uow,
		locationRepo:   locationRepo,
		contextTimeout: timeout,
	}
}

func (s *locationService) CreateLocation(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if location.Name == "" {
			return domain.NewValidation("name", "name is required")
		}
		now := time.Now()
		location.CreatedAt = now
		location.UpdatedAt = now
		if err := tx.Locations().Create(ctx, location); err != nil {
			return fmt.Errorf("create location: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) GetLocationByID(ctx context.Context, id int64) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.locationRepo.GetByID(ctx, id)
}

func (s *locationService) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.locationRepo.List(ctx)
}

func (s *locationService) UpdateLocation(ctx context.Context, location *domain.Location) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		existing, err := tx.Locations().GetByID(ctx, location.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get location: %w", err)
		}

		existing.Name = location.Name
		existing.Address = location.Address
		existing.City = location.City
		existing.Country = location.Country
		existing.Capacity = location.Capacity
		existing.UpdatedAt = time.Now()

		if err := tx.Locations().Update(ctx, existing); err != nil {
			return fmt.Errorf("update location: %w", err)
		}
		return nil
	})
}

func (s *locationService) DeleteLocation(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var deleted bool
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if _, err := tx.Locations().GetByID(ctx, id); err != nil {
			if domain.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get location: %w", err)
		}
		if err := tx.Locations().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete location: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
