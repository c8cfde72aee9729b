package domain

import (
	"context"
	"time"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// Valid reports whether s is one of the known event statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// Event is a conference event held at a location within a category.
// EndDate is never before StartDate on any committed row.
type Event struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Status      EventStatus `json:"status"`
	CategoryID  int64       `json:"category_id"`
	LocationID  int64       `json:"location_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// EventDetail is an event hydrated with its category, location and
// registrations.
type EventDetail struct {
	Event         *Event          `json:"event"`
	Category      *Category       `json:"category"`
	Location      *Location       `json:"location"`
	Registrations []*Registration `json:"registrations"`
}

// EventFilter narrows event listings. Date semantics: an event matches
// when it lies fully inside the range, i.e. start_date >= From and
// end_date <= To.
type EventFilter struct {
	From       *time.Time
	To         *time.Time
	LocationID *int64
	CategoryID *int64
	Status     *EventStatus
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	GetWithDetails(ctx context.Context, id int64) (*EventDetail, error)
	Find(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, error)
	Count(ctx context.Context, filter EventFilter) (int, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService manages the event lifecycle. All mutating operations run
// inside a single unit-of-work transaction and roll back on any error.
type EventService interface {
	// CreateEvent validates date ordering and that the referenced
	// category and location exist, persists the event with status draft,
	// and returns the hydrated detail.
	CreateEvent(ctx context.Context, event *Event) (*EventDetail, error)
	GetEventByID(ctx context.Context, id int64) (*EventDetail, error)
	ListEvents(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int, error)
	// UpdateEvent re-runs the create validations against the updated
	// fields before saving.
	UpdateEvent(ctx context.Context, event *Event) error
	// DeleteEvent fails with ConflictError when the event is completed.
	// Dependent sessions and registrations are removed by the store's
	// referential configuration.
	DeleteEvent(ctx context.Context, id int64) error
}
