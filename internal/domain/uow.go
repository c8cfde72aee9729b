package domain

import "context"

// UnitOfWork opens transaction-scoped repository sets. One Tx is created
// per logical business operation and is always finished (committed or
// rolled back) before the operation returns.
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a single open transaction over the full repository set. All
// repositories returned by its accessors are bound to the same underlying
// transaction; mutations through them are invisible to other Tx instances
// until Commit.
//
// Commit fails with TransactionError if the transaction has already been
// committed or rolled back. Rollback after the transaction is finished is
// a no-op.
type Tx interface {
	Categories() CategoryRepository
	Locations() LocationRepository
	Rooms() RoomRepository
	Events() EventRepository
	Participants() ParticipantRepository
	Speakers() SpeakerRepository
	Sessions() SessionRepository
	Registrations() RegistrationRepository
	Ratings() RatingRepository

	Commit() error
	Rollback() error
}
