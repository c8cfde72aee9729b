package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventmanagement/internal/domain"
)

type eventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) domain.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, title, description, start_date, end_date, status, category_id, location_id, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
		&e.Status, &e.CategoryID, &e.LocationID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (title, description, start_date, end_date, status, category_id, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Status, event.CategoryID, event.LocationID, event.CreatedAt, event.UpdatedAt).
		Scan(&event.ID)
	return writeError(err)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("event", id)
		}
		return nil, err
	}
	return event, nil
}

// GetWithDetails loads the event together with its category, location and
// registrations.
func (r *eventRepository) GetWithDetails(ctx context.Context, id int64) (*domain.EventDetail, error) {
	query := `
		SELECT e.id, e.title, e.description, e.start_date, e.end_date, e.status,
		       e.category_id, e.location_id, e.created_at, e.updated_at,
		       c.id, c.name, c.description, c.created_at, c.updated_at,
		       l.id, l.name, l.address, l.city, l.country, l.capacity, l.created_at, l.updated_at
		FROM events e
		JOIN categories c ON c.id = e.category_id
		JOIN locations l ON l.id = e.location_id
		WHERE e.id = $1
	`
	e := &domain.Event{}
	c := &domain.Category{}
	l := &domain.Location{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.Status,
		&e.CategoryID, &e.LocationID, &e.CreatedAt, &e.UpdatedAt,
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
		&l.ID, &l.Name, &l.Address, &l.City, &l.Country, &l.Capacity, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("event", id)
		}
		return nil, err
	}

	regQuery := `
		SELECT event_id, participant_id, registration_date, attendance_status
		FROM event_registrations
		WHERE event_id = $1
		ORDER BY registration_date
	`
	rows, err := r.db.QueryContext(ctx, regQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.Registration{}
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.EventID, &reg.ParticipantID, &reg.RegistrationDate, &reg.AttendanceStatus); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.EventDetail{Event: e, Category: c, Location: l, Registrations: regs}, nil
}

// filterClauses builds the WHERE fragment for an event filter. Date
// semantics: the event must lie fully inside [From, To].
func filterClauses(filter domain.EventFilter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.From != nil {
		clauses = append(clauses, "start_date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		clauses = append(clauses, "end_date <= "+arg(*filter.To))
	}
	if filter.LocationID != nil {
		clauses = append(clauses, "location_id = "+arg(*filter.LocationID))
	}
	if filter.CategoryID != nil {
		clauses = append(clauses, "category_id = "+arg(*filter.CategoryID))
	}
	if filter.Status != nil {
		clauses = append(clauses, "status = "+arg(string(*filter.Status)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *eventRepository) Find(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, error) {
	where, args := filterClauses(filter)
	query := `SELECT ` + eventColumns + ` FROM events` + where +
		fmt.Sprintf(" ORDER BY start_date, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.PageSize, params.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (r *eventRepository) Count(ctx context.Context, filter domain.EventFilter) (int, error) {
	where, args := filterClauses(filter)
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`+where, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, start_date = $3, end_date = $4,
		    status = $5, category_id = $6, location_id = $7, updated_at = $8
		WHERE id = $9
	`
	res, err := r.db.ExecContext(ctx, query,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Status, event.CategoryID, event.LocationID, event.UpdatedAt, event.ID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("event", event.ID)
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("event", id)
	}
	return nil
}
