package domain

import (
	"context"
	"time"
)

// Room is a bookable space inside a location. Its name is unique within
// that location.
type Room struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	LocationID int64     `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RoomRepository defines storage operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id int64) (*Room, error)
	ListByLocationID(ctx context.Context, locationID int64) ([]*Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id int64) error
}

// RoomService manages rooms within locations.
type RoomService interface {
	CreateRoom(ctx context.Context, room *Room) (*Room, error)
	GetRoomByID(ctx context.Context, id int64) (*Room, error)
	ListRoomsByLocation(ctx context.Context, locationID int64) ([]*Room, error)
	UpdateRoom(ctx context.Context, room *Room) error
	// DeleteRoom fails with ConflictError while sessions are scheduled in
	// the room.
	DeleteRoom(ctx context.Context, id int64) (bool, error)
}
