package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmanagement/internal/domain"
)

type unitOfWork struct {
	db *sql.DB
}

// NewUnitOfWork returns a UnitOfWork backed by the given connection pool.
// Each Begin opens an independent database transaction; the returned
// handle carries no shared mutable state, so one UnitOfWork value is safe
// for concurrent callers.
func NewUnitOfWork(db *sql.DB) domain.UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Begin(ctx context.Context) (domain.Tx, error) {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &domain.TransactionError{Op: "begin", Err: err}
	}
	return &uowTx{tx: tx}, nil
}

// uowTx binds the full repository set to one *sql.Tx. Repositories are
// built lazily on first access.
type uowTx struct {
	tx *sql.Tx

	categories    domain.CategoryRepository
	locations     domain.LocationRepository
	rooms         domain.RoomRepository
	events        domain.EventRepository
	participants  domain.ParticipantRepository
	speakers      domain.SpeakerRepository
	sessions      domain.SessionRepository
	registrations domain.RegistrationRepository
	ratings       domain.RatingRepository
}

func (t *uowTx) Categories() domain.CategoryRepository {
	if t.categories == nil {
		t.categories = NewCategoryRepository(t.tx)
	}
	return t.categories
}

func (t *uowTx) Locations() domain.LocationRepository {
	if t.locations == nil {
		t.locations = NewLocationRepository(t.tx)
	}
	return t.locations
}

func (t *uowTx) Rooms() domain.RoomRepository {
	if t.rooms == nil {
		t.rooms = NewRoomRepository(t.tx)
	}
	return t.rooms
}

func (t *uowTx) Events() domain.EventRepository {
	if t.events == nil {
		t.events = NewEventRepository(t.tx)
	}
	return t.events
}

func (t *uowTx) Participants() domain.ParticipantRepository {
	if t.participants == nil {
		t.participants = NewParticipantRepository(t.tx)
	}
	return t.participants
}

func (t *uowTx) Speakers() domain.SpeakerRepository {
	if t.speakers == nil {
		t.speakers = NewSpeakerRepository(t.tx)
	}
	return t.speakers
}

func (t *uowTx) Sessions() domain.SessionRepository {
	if t.sessions == nil {
		t.sessions = NewSessionRepository(t.tx)
	}
	return t.sessions
}

func (t *uowTx) Registrations() domain.RegistrationRepository {
	if t.registrations == nil {
		t.registrations = NewRegistrationRepository(t.tx)
	}
	return t.registrations
}

func (t *uowTx) Ratings() domain.RatingRepository {
	if t.ratings == nil {
		t.ratings = NewRatingRepository(t.tx)
	}
	return t.ratings
}

func (t *uowTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return &domain.TransactionError{Op: "commit", Err: errors.New("no open transaction")}
		}
		return &domain.TransactionError{Op: "commit", Err: err}
	}
	return nil
}

// Rollback discards the transaction. Rolling back an already finished
// transaction is a no-op, so services may defer it unconditionally.
func (t *uowTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return &domain.TransactionError{Op: "rollback", Err: err}
	}
	return nil
}
