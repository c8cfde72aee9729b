package services

import (
	"context"
	"testing"
	"time"

	"eventmanagement/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	store *fakeStore
	event *domain.Event
	room  *domain.Room
	svc   domain.SessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	store := newFakeStore()
	category := store.addCategory("Tech")
	location := store.addLocation("Convention Center", "Berlin")
	room := store.addRoom(location.ID, "Main Hall")
	start := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	event := store.addEvent("GopherCon", domain.EventStatusPublished, start, start.AddDate(0, 0, 2), category.ID, location.ID)
	svc := NewSessionService(&fakeUoW{store}, &fakeSessionRepo{store}, testTimeout)
	return &sessionFixture{store: store, event: event, room: room, svc: svc}
}

func TestSessionService_CreateSession(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		f := newSessionFixture(t)
		session, err := f.svc.CreateSession(ctx, &domain.Session{
			Title: "Keynote", StartTime: start, EndTime: start.Add(time.Hour),
			EventID: f.event.ID, RoomID: f.room.ID,
		})
		require.NoError(t, err)
		assert.NotZero(t, session.ID)
	})

	t.Run("zero duration is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.CreateSession(ctx, &domain.Session{
			Title: "Instant", StartTime: start, EndTime: start,
			EventID: f.event.ID, RoomID: f.room.ID,
		})
		require.True(t, domain.IsValidation(err))
		require.EqualError(t, err, "end_time: end time must be after start time")
	})

	t.Run("missing event", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.CreateSession(ctx, &domain.Session{
			Title: "Orphan", StartTime: start, EndTime: start.Add(time.Hour),
			EventID: 99, RoomID: f.room.ID,
		})
		require.True(t, domain.IsNotFound(err))
	})

	t.Run("missing room", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.CreateSession(ctx, &domain.Session{
			Title: "Nowhere", StartTime: start, EndTime: start.Add(time.Hour),
			EventID: f.event.ID, RoomID: 99,
		})
		require.True(t, domain.IsNotFound(err))
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	f := newSessionFixture(t)
	session := f.store.addSession(f.event.ID, f.room.ID, "Keynote", start, start.Add(time.Hour))

	deleted, err := f.svc.DeleteSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.svc.DeleteSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSessionService_AssignSpeaker(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	t.Run("assign and remove", func(t *testing.T) {
		f := newSessionFixture(t)
		session := f.store.addSession(f.event.ID, f.room.ID, "Keynote", start, start.Add(time.Hour))
		speaker := f.store.addSpeaker("Grace", "Hopper", "grace@example.com")

		require.NoError(t, f.svc.AssignSpeaker(ctx, session.ID, speaker.ID, "keynote"))
		require.Len(t, f.store.assignments, 1)
		assert.Equal(t, "keynote", f.store.assignments[0].Role)

		require.NoError(t, f.svc.RemoveSpeaker(ctx, session.ID, speaker.ID))
		assert.Empty(t, f.store.assignments)
	})

	t.Run("duplicate assignment", func(t *testing.T) {
		f := newSessionFixture(t)
		session := f.store.addSession(f.event.ID, f.room.ID, "Keynote", start, start.Add(time.Hour))
		speaker := f.store.addSpeaker("Grace", "Hopper", "grace@example.com")

		require.NoError(t, f.svc.AssignSpeaker(ctx, session.ID, speaker.ID, ""))
		err := f.svc.AssignSpeaker(ctx, session.ID, speaker.ID, "")
		require.True(t, domain.IsConflict(err))
		require.EqualError(t, err, "speaker 6 is already assigned to session 5")
	})

	t.Run("missing speaker", func(t *testing.T) {
		f := newSessionFixture(t)
		session := f.store.addSession(f.event.ID, f.room.ID, "Keynote", start, start.Add(time.Hour))

		err := f.svc.AssignSpeaker(ctx, session.ID, 99, "")
		require.True(t, domain.IsNotFound(err))
	})

	t.Run("remove unassigned speaker", func(t *testing.T) {
		f := newSessionFixture(t)
		session := f.store.addSession(f.event.ID, f.room.ID, "Keynote", start, start.Add(time.Hour))
		speaker := f.store.addSpeaker("Grace", "Hopper", "grace@example.com")

		err := f.svc.RemoveSpeaker(ctx, session.ID, speaker.ID)
		require.True(t, domain.IsNotFound(err))
	})
}

func TestRoomService_DeleteRoom(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	t.Run("blocked while sessions are scheduled", func(t *testing.T) {
		f := newSessionFixture(t)
		f.store.addSession(f.event.ID, f.room.ID, "Keynote", start, start.Add(time.Hour))

		svc := NewRoomService(&fakeUoW{f.store}, &fakeRoomRepo{f.store}, testTimeout)
		_, err := svc.DeleteRoom(ctx, f.room.ID)
		require.True(t, domain.IsConflict(err))
		require.EqualError(t, err, "cannot delete room 3: 1 session(s) scheduled in it")
		assert.Contains(t, f.store.rooms, f.room.ID)
	})

	t.Run("success without sessions", func(t *testing.T) {
		f := newSessionFixture(t)
		svc := NewRoomService(&fakeUoW{f.store}, &fakeRoomRepo{f.store}, testTimeout)

		deleted, err := svc.DeleteRoom(ctx, f.room.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("absent room reports not deleted", func(t *testing.T) {
		f := newSessionFixture(t)
		svc := NewRoomService(&fakeUoW{f.store}, &fakeRoomRepo{f.store}, testTimeout)

		deleted, err := svc.DeleteRoom(ctx, 99)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
