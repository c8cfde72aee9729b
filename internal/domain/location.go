package domain

import (
	"context"
	"time"
)

// Location is a venue hosting events. A location owns its rooms.
type Location struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Capacity  int       `json:"capacity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationRepository defines storage operations for locations.
type LocationRepository interface {
	Create(ctx context.Context, location *Location) error
	GetByID(ctx context.Context, id int64) (*Location, error)
	List(ctx context.Context) ([]*Location, error)
	Update(ctx context.Context, location *Location) error
	Delete(ctx context.Context, id int64) error
}

// LocationService manages venue records.
type LocationService interface {
	CreateLocation(ctx context.Context, location *Location) (*Location, error)
	GetLocationByID(ctx context.Context, id int64) (*Location, error)
	ListLocations(ctx context.Context) ([]*Location, error)
	UpdateLocation(ctx context.Context, location *Location) error
	DeleteLocation(ctx context.Context, id int64) (bool, error)
}
