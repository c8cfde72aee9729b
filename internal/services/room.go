package services

import (
	"context"
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

type roomService struct {
	uow            domain.UnitOfWork
	roomRepo       domain.RoomRepository
	contextTimeout time.Duration
}

// NewRoomService creates the room service.
func NewRoomService(uow domain.UnitOfWork, roomRepo domain.RoomRepository, timeout time.Duration) domain.RoomService {
	return &roomService{
		uow:            uow,
		roomRepo:       roomRepo,
		contextTimeout: timeout,
	}
}

func (s *roomService) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if room.Name == "" {
			return domain.NewValidation("name", "name is required")
		}
		if _, err := tx.Locations().GetByID(ctx, room.LocationID); err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get location: %w", err)
		}

		now := time.Now()
		room.CreatedAt = now
		room.UpdatedAt = now
		// Room names are unique per location; a duplicate hits the
		// store's constraint and comes back as ConflictError.
		if err := tx.Rooms().Create(ctx, room); err != nil {
			if domain.IsConflict(err) {
				return domain.NewConflict("room %q already exists at location %d", room.Name, room.LocationID)
			}
			return fmt.Errorf("create room: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.roomRepo.GetByID(ctx, id)
}

func (s *roomService) ListRoomsByLocation(ctx context.Context, locationID int64) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.roomRepo.ListByLocationID(ctx, locationID)
}

func (s *roomService) UpdateRoom(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return runInTx(ctx, s.uow, func(tx domain.Tx) error {
		existing, err := tx.Rooms().GetByID(ctx, room.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return fmt.Errorf("get room: %w", err)
		}
		if room.LocationID != existing.LocationID {
			if _, err := tx.Locations().GetByID(ctx, room.LocationID); err != nil {
				if domain.IsNotFound(err) {
					return err
				}
				return fmt.Errorf("get location: %w", err)
			}
		}

		existing.Name = room.Name
		existing.Capacity = room.Capacity
		existing.LocationID = room.LocationID
		existing.UpdatedAt = time.Now()

		if err := tx.Rooms().Update(ctx, existing); err != nil {
			if domain.IsConflict(err) {
				return domain.NewConflict("room %q already exists at location %d", room.Name, room.LocationID)
			}
			return fmt.Errorf("update room: %w", err)
		}
		return nil
	})
}

func (s *roomService) DeleteRoom(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var deleted bool
	err := runInTx(ctx, s.uow, func(tx domain.Tx) error {
		if _, err := tx.Rooms().GetByID(ctx, id); err != nil {
			if domain.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get room: %w", err)
		}
		count, err := tx.Sessions().CountByRoomID(ctx, id)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}
		if count > 0 {
			return domain.NewConflict("cannot delete room %d: %d session(s) scheduled in it", id, count)
		}
		if err := tx.Rooms().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete room: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
