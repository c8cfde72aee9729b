package services

import (
	"context"
	"sort"
	"time"

	"eventmanagement/internal/domain"
)

// fakeStore is the shared in-memory state behind the fake repositories.
// Rollback does not undo writes; tests assert on guard ordering and on the
// commit/rollback counters instead.
type fakeStore struct {
	categories    map[int64]*domain.Category
	locations     map[int64]*domain.Location
	rooms         map[int64]*domain.Room
	events        map[int64]*domain.Event
	participants  map[int64]*domain.Participant
	speakers      map[int64]*domain.Speaker
	sessions      map[int64]*domain.Session
	assignments   []*domain.SessionSpeaker
	registrations map[[2]int64]*domain.Registration
	ratings       map[int64]*domain.Rating

	nextID int64

	commits   int
	rollbacks int
	beginErr  error
	commitErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories:    make(map[int64]*domain.Category),
		locations:     make(map[int64]*domain.Location),
		rooms:         make(map[int64]*domain.Room),
		events:        make(map[int64]*domain.Event),
		participants:  make(map[int64]*domain.Participant),
		speakers:      make(map[int64]*domain.Speaker),
		sessions:      make(map[int64]*domain.Session),
		registrations: make(map[[2]int64]*domain.Registration),
		ratings:       make(map[int64]*domain.Rating),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

// Seed helpers.

func (s *fakeStore) addCategory(name string) *domain.Category {
	c := &domain.Category{ID: s.id(), Name: name}
	s.categories[c.ID] = c
	return c
}

func (s *fakeStore) addLocation(name, city string) *domain.Location {
	l := &domain.Location{ID: s.id(), Name: name, Address: "1 Main St", City: city, Country: "DE"}
	s.locations[l.ID] = l
	return l
}

func (s *fakeStore) addRoom(locationID int64, name string) *domain.Room {
	r := &domain.Room{ID: s.id(), Name: name, Capacity: 100, LocationID: locationID}
	s.rooms[r.ID] = r
	return r
}

func (s *fakeStore) addEvent(title string, status domain.EventStatus, start, end time.Time, categoryID, locationID int64) *domain.Event {
	e := &domain.Event{
		ID: s.id(), Title: title, StartDate: start, EndDate: end,
		Status: status, CategoryID: categoryID, LocationID: locationID,
	}
	s.events[e.ID] = e
	return e
}

func (s *fakeStore) addParticipant(first, last, email string) *domain.Participant {
	p := &domain.Participant{ID: s.id(), FirstName: first, LastName: last, Email: email}
	s.participants[p.ID] = p
	return p
}

func (s *fakeStore) addSpeaker(first, last, email string) *domain.Speaker {
	sp := &domain.Speaker{ID: s.id(), FirstName: first, LastName: last, Email: email}
	s.speakers[sp.ID] = sp
	return sp
}

func (s *fakeStore) addSession(eventID, roomID int64, title string, start, end time.Time) *domain.Session {
	sess := &domain.Session{ID: s.id(), Title: title, StartTime: start, EndTime: end, EventID: eventID, RoomID: roomID}
	s.sessions[sess.ID] = sess
	return sess
}

func (s *fakeStore) addRegistration(eventID, participantID int64, status domain.AttendanceStatus) *domain.Registration {
	reg := &domain.Registration{
		EventID: eventID, ParticipantID: participantID,
		RegistrationDate: time.Now().UTC(), AttendanceStatus: status,
	}
	s.registrations[[2]int64{eventID, participantID}] = reg
	return reg
}

func (s *fakeStore) addRating(sessionID, participantID int64, score int) *domain.Rating {
	rt := &domain.Rating{ID: s.id(), SessionID: sessionID, ParticipantID: participantID, Score: score}
	s.ratings[rt.ID] = rt
	return rt
}

// fakeUoW implements domain.UnitOfWork over the shared store.
type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Begin(_ context.Context) (domain.Tx, error) {
	if u.store.beginErr != nil {
		return nil, &domain.TransactionError{Op: "begin", Err: u.store.beginErr}
	}
	return &fakeTx{store: u.store}, nil
}

type fakeTx struct {
	store    *fakeStore
	finished bool
}

func (t *fakeTx) Commit() error {
	if t.finished {
		return &domain.TransactionError{Op: "commit"}
	}
	if t.store.commitErr != nil {
		t.finished = true
		return &domain.TransactionError{Op: "commit", Err: t.store.commitErr}
	}
	t.finished = true
	t.store.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	if t.finished {
		return nil
	}
	t.finished = true
	t.store.rollbacks++
	return nil
}

func (t *fakeTx) Categories() domain.CategoryRepository       { return &fakeCategoryRepo{t.store} }
func (t *fakeTx) Locations() domain.LocationRepository        { return &fakeLocationRepo{t.store} }
func (t *fakeTx) Rooms() domain.RoomRepository                { return &fakeRoomRepo{t.store} }
func (t *fakeTx) Events() domain.EventRepository              { return &fakeEventRepo{t.store} }
func (t *fakeTx) Participants() domain.ParticipantRepository  { return &fakeParticipantRepo{t.store} }
func (t *fakeTx) Speakers() domain.SpeakerRepository          { return &fakeSpeakerRepo{t.store} }
func (t *fakeTx) Sessions() domain.SessionRepository          { return &fakeSessionRepo{t.store} }
func (t *fakeTx) Registrations() domain.RegistrationRepository {
	return &fakeRegistrationRepo{t.store}
}
func (t *fakeTx) Ratings() domain.RatingRepository { return &fakeRatingRepo{t.store} }

// Category repository.

type fakeCategoryRepo struct{ store *fakeStore }

func (f *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	c.ID = f.store.id()
	f.store.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	if c, ok := f.store.categories[id]; ok {
		return c, nil
	}
	return nil, domain.NewNotFound("category", id)
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range f.store.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domain.NewNotFound("category", name)
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := []*domain.Category{}
	for _, c := range f.store.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := f.store.categories[c.ID]; !ok {
		return domain.NewNotFound("category", c.ID)
	}
	f.store.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.categories[id]; !ok {
		return domain.NewNotFound("category", id)
	}
	delete(f.store.categories, id)
	return nil
}

// Location repository.

type fakeLocationRepo struct{ store *fakeStore }

func (f *fakeLocationRepo) Create(_ context.Context, l *domain.Location) error {
	l.ID = f.store.id()
	f.store.locations[l.ID] = l
	return nil
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id int64) (*domain.Location, error) {
	if l, ok := f.store.locations[id]; ok {
		return l, nil
	}
	return nil, domain.NewNotFound("location", id)
}

func (f *fakeLocationRepo) List(_ context.Context) ([]*domain.Location, error) {
	out := []*domain.Location{}
	for _, l := range f.store.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLocationRepo) Update(_ context.Context, l *domain.Location) error {
	if _, ok := f.store.locations[l.ID]; !ok {
		return domain.NewNotFound("location", l.ID)
	}
	f.store.locations[l.ID] = l
	return nil
}

func (f *fakeLocationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.locations[id]; !ok {
		return domain.NewNotFound("location", id)
	}
	delete(f.store.locations, id)
	return nil
}

// Room repository.

type fakeRoomRepo struct{ store *fakeStore }

func (f *fakeRoomRepo) Create(_ context.Context, r *domain.Room) error {
	r.ID = f.store.id()
	f.store.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if r, ok := f.store.rooms[id]; ok {
		return r, nil
	}
	return nil, domain.NewNotFound("room", id)
}

func (f *fakeRoomRepo) ListByLocationID(_ context.Context, locationID int64) ([]*domain.Room, error) {
	out := []*domain.Room{}
	for _, r := range f.store.rooms {
		if r.LocationID == locationID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, r *domain.Room) error {
	if _, ok := f.store.rooms[r.ID]; !ok {
		return domain.NewNotFound("room", r.ID)
	}
	f.store.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.rooms[id]; !ok {
		return domain.NewNotFound("room", id)
	}
	delete(f.store.rooms, id)
	return nil
}

// Event repository.

type fakeEventRepo struct{ store *fakeStore }

func (f *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	e.ID = f.store.id()
	f.store.events[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	if e, ok := f.store.events[id]; ok {
		return e, nil
	}
	return nil, domain.NewNotFound("event", id)
}

func (f *fakeEventRepo) GetWithDetails(_ context.Context, id int64) (*domain.EventDetail, error) {
	e, ok := f.store.events[id]
	if !ok {
		return nil, domain.NewNotFound("event", id)
	}
	regs := []*domain.Registration{}
	for _, reg := range f.store.registrations {
		if reg.EventID == id {
			regs = append(regs, reg)
		}
	}
	return &domain.EventDetail{
		Event:         e,
		Category:      f.store.categories[e.CategoryID],
		Location:      f.store.locations[e.LocationID],
		Registrations: regs,
	}, nil
}

func (f *fakeEventRepo) Find(_ context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, error) {
	out := []*domain.Event{}
	for _, e := range f.store.events {
		if filter.From != nil && e.StartDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.EndDate.After(*filter.To) {
			continue
		}
		if filter.LocationID != nil && e.LocationID != *filter.LocationID {
			continue
		}
		if filter.CategoryID != nil && e.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventRepo) Count(ctx context.Context, filter domain.EventFilter) (int, error) {
	events, _ := f.Find(ctx, filter, domain.PaginationParams{})
	return len(events), nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *domain.Event) error {
	if _, ok := f.store.events[e.ID]; !ok {
		return domain.NewNotFound("event", e.ID)
	}
	f.store.events[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.events[id]; !ok {
		return domain.NewNotFound("event", id)
	}
	delete(f.store.events, id)
	for key := range f.store.registrations {
		if key[0] == id {
			delete(f.store.registrations, key)
		}
	}
	for sid, sess := range f.store.sessions {
		if sess.EventID == id {
			delete(f.store.sessions, sid)
		}
	}
	return nil
}

// Participant repository.

type fakeParticipantRepo struct{ store *fakeStore }

func (f *fakeParticipantRepo) Create(_ context.Context, p *domain.Participant) error {
	p.ID = f.store.id()
	f.store.participants[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) GetByID(_ context.Context, id int64) (*domain.Participant, error) {
	if p, ok := f.store.participants[id]; ok {
		return p, nil
	}
	return nil, domain.NewNotFound("participant", id)
}

func (f *fakeParticipantRepo) GetByEmail(_ context.Context, email string) (*domain.Participant, error) {
	for _, p := range f.store.participants {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domain.NewNotFound("participant", email)
}

func (f *fakeParticipantRepo) List(_ context.Context, _ domain.PaginationParams) ([]*domain.Participant, error) {
	out := []*domain.Participant{}
	for _, p := range f.store.participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeParticipantRepo) Count(_ context.Context) (int, error) {
	return len(f.store.participants), nil
}

func (f *fakeParticipantRepo) Update(_ context.Context, p *domain.Participant) error {
	if _, ok := f.store.participants[p.ID]; !ok {
		return domain.NewNotFound("participant", p.ID)
	}
	f.store.participants[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.participants[id]; !ok {
		return domain.NewNotFound("participant", id)
	}
	delete(f.store.participants, id)
	return nil
}

// Speaker repository.

type fakeSpeakerRepo struct{ store *fakeStore }

func (f *fakeSpeakerRepo) Create(_ context.Context, sp *domain.Speaker) error {
	sp.ID = f.store.id()
	f.store.speakers[sp.ID] = sp
	return nil
}

func (f *fakeSpeakerRepo) GetByID(_ context.Context, id int64) (*domain.Speaker, error) {
	if sp, ok := f.store.speakers[id]; ok {
		return sp, nil
	}
	return nil, domain.NewNotFound("speaker", id)
}

func (f *fakeSpeakerRepo) List(_ context.Context) ([]*domain.Speaker, error) {
	out := []*domain.Speaker{}
	for _, sp := range f.store.speakers {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSpeakerRepo) Update(_ context.Context, sp *domain.Speaker) error {
	if _, ok := f.store.speakers[sp.ID]; !ok {
		return domain.NewNotFound("speaker", sp.ID)
	}
	f.store.speakers[sp.ID] = sp
	return nil
}

func (f *fakeSpeakerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.speakers[id]; !ok {
		return domain.NewNotFound("speaker", id)
	}
	delete(f.store.speakers, id)
	return nil
}

// Session repository.

type fakeSessionRepo struct{ store *fakeStore }

func (f *fakeSessionRepo) Create(_ context.Context, sess *domain.Session) error {
	sess.ID = f.store.id()
	f.store.sessions[sess.ID] = sess
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id int64) (*domain.Session, error) {
	if sess, ok := f.store.sessions[id]; ok {
		return sess, nil
	}
	return nil, domain.NewNotFound("session", id)
}

func (f *fakeSessionRepo) GetWithDetails(ctx context.Context, id int64) (*domain.SessionDetail, error) {
	sess, ok := f.store.sessions[id]
	if !ok {
		return nil, domain.NewNotFound("session", id)
	}
	speakers, _ := f.ListSpeakers(ctx, id)
	return &domain.SessionDetail{
		Session:  sess,
		Room:     f.store.rooms[sess.RoomID],
		Speakers: speakers,
	}, nil
}

func (f *fakeSessionRepo) ListByEventID(_ context.Context, eventID int64) ([]*domain.Session, error) {
	out := []*domain.Session{}
	for _, sess := range f.store.sessions {
		if sess.EventID == eventID {
			out = append(out, sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSessionRepo) CountByRoomID(_ context.Context, roomID int64) (int, error) {
	count := 0
	for _, sess := range f.store.sessions {
		if sess.RoomID == roomID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSessionRepo) Update(_ context.Context, sess *domain.Session) error {
	if _, ok := f.store.sessions[sess.ID]; !ok {
		return domain.NewNotFound("session", sess.ID)
	}
	f.store.sessions[sess.ID] = sess
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.sessions[id]; !ok {
		return domain.NewNotFound("session", id)
	}
	delete(f.store.sessions, id)
	return nil
}

func (f *fakeSessionRepo) AssignSpeaker(_ context.Context, a *domain.SessionSpeaker) error {
	for _, existing := range f.store.assignments {
		if existing.SessionID == a.SessionID && existing.SpeakerID == a.SpeakerID {
			return domain.NewConflict("speaker %d already assigned to session %d", a.SpeakerID, a.SessionID)
		}
	}
	f.store.assignments = append(f.store.assignments, a)
	return nil
}

func (f *fakeSessionRepo) RemoveSpeaker(_ context.Context, sessionID, speakerID int64) error {
	for i, a := range f.store.assignments {
		if a.SessionID == sessionID && a.SpeakerID == speakerID {
			f.store.assignments = append(f.store.assignments[:i], f.store.assignments[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFound("session speaker", speakerID)
}

func (f *fakeSessionRepo) ListSpeakers(_ context.Context, sessionID int64) ([]*domain.Speaker, error) {
	out := []*domain.Speaker{}
	for _, a := range f.store.assignments {
		if a.SessionID == sessionID {
			if sp, ok := f.store.speakers[a.SpeakerID]; ok {
				out = append(out, sp)
			}
		}
	}
	return out, nil
}

// Registration repository. Create enforces the (event, participant)
// unique key the way the store's unique index does.

type fakeRegistrationRepo struct{ store *fakeStore }

func (f *fakeRegistrationRepo) Create(_ context.Context, reg *domain.Registration) error {
	key := [2]int64{reg.EventID, reg.ParticipantID}
	if _, ok := f.store.registrations[key]; ok {
		return domain.NewConflict("duplicate key value violates unique constraint")
	}
	f.store.registrations[key] = reg
	return nil
}

func (f *fakeRegistrationRepo) GetByEventAndParticipant(_ context.Context, eventID, participantID int64) (*domain.Registration, error) {
	if reg, ok := f.store.registrations[[2]int64{eventID, participantID}]; ok {
		return reg, nil
	}
	return nil, domain.NewNotFound("registration", participantID)
}

func (f *fakeRegistrationRepo) ListByEventID(_ context.Context, eventID int64) ([]*domain.Registration, error) {
	out := []*domain.Registration{}
	for _, reg := range f.store.registrations {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) ListByParticipantID(_ context.Context, participantID int64) ([]*domain.Registration, error) {
	out := []*domain.Registration{}
	for _, reg := range f.store.registrations {
		if reg.ParticipantID == participantID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) CountByParticipantID(_ context.Context, participantID int64) (int, error) {
	count := 0
	for _, reg := range f.store.registrations {
		if reg.ParticipantID == participantID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(_ context.Context, eventID, participantID int64, status domain.AttendanceStatus) error {
	reg, ok := f.store.registrations[[2]int64{eventID, participantID}]
	if !ok {
		return domain.NewNotFound("registration", participantID)
	}
	reg.AttendanceStatus = status
	return nil
}

func (f *fakeRegistrationRepo) Delete(_ context.Context, eventID, participantID int64) error {
	key := [2]int64{eventID, participantID}
	if _, ok := f.store.registrations[key]; !ok {
		return domain.NewNotFound("registration", participantID)
	}
	delete(f.store.registrations, key)
	return nil
}

// Rating repository.

type fakeRatingRepo struct{ store *fakeStore }

func (f *fakeRatingRepo) Create(_ context.Context, rt *domain.Rating) error {
	for _, existing := range f.store.ratings {
		if existing.SessionID == rt.SessionID && existing.ParticipantID == rt.ParticipantID {
			return domain.NewConflict("duplicate key value violates unique constraint")
		}
	}
	rt.ID = f.store.id()
	f.store.ratings[rt.ID] = rt
	return nil
}

func (f *fakeRatingRepo) GetByID(_ context.Context, id int64) (*domain.Rating, error) {
	if rt, ok := f.store.ratings[id]; ok {
		return rt, nil
	}
	return nil, domain.NewNotFound("rating", id)
}

func (f *fakeRatingRepo) ListBySessionID(_ context.Context, sessionID int64) ([]*domain.Rating, error) {
	out := []*domain.Rating{}
	for _, rt := range f.store.ratings {
		if rt.SessionID == sessionID {
			out = append(out, rt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRatingRepo) ListByParticipantID(_ context.Context, participantID int64) ([]*domain.Rating, error) {
	out := []*domain.Rating{}
	for _, rt := range f.store.ratings {
		if rt.ParticipantID == participantID {
			out = append(out, rt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRatingRepo) AverageBySessionID(_ context.Context, sessionID int64) (float64, bool, error) {
	sum, count := 0, 0
	for _, rt := range f.store.ratings {
		if rt.SessionID == sessionID {
			sum += rt.Score
			count++
		}
	}
	if count == 0 {
		return 0, false, nil
	}
	return float64(sum) / float64(count), true, nil
}

func (f *fakeRatingRepo) Update(_ context.Context, rt *domain.Rating) error {
	if _, ok := f.store.ratings[rt.ID]; !ok {
		return domain.NewNotFound("rating", rt.ID)
	}
	f.store.ratings[rt.ID] = rt
	return nil
}

func (f *fakeRatingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.store.ratings[id]; !ok {
		return domain.NewNotFound("rating", id)
	}
	delete(f.store.ratings, id)
	return nil
}

// fakeEmailService records confirmation sends.
type fakeEmailService struct {
	sent []*domain.RegistrationConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendRegistrationConfirmation(_ context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
