package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmanagement/internal/domain"
)

type roomRepository struct {
	db DBTX
}

func NewRoomRepository(db DBTX) domain.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (name, capacity, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		room.Name, room.Capacity, room.LocationID, room.CreatedAt, room.UpdatedAt).
		Scan(&room.ID)
	return writeError(err)
}

func (r *roomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	query := `
		SELECT id, name, capacity, location_id, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`
	room := &domain.Room{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&room.ID, &room.Name, &room.Capacity, &room.LocationID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("room", id)
		}
		return nil, err
	}
	return room, nil
}

func (r *roomRepository) ListByLocationID(ctx context.Context, locationID int64) ([]*domain.Room, error) {
	query := `
		SELECT id, name, capacity, location_id, created_at, updated_at
		FROM rooms
		WHERE location_id = $1
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*domain.Room
	for rows.Next() {
		room := &domain.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.LocationID, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, capacity = $2, location_id = $3, updated_at = $4
		WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		room.Name, room.Capacity, room.LocationID, room.UpdatedAt, room.ID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("room", room.ID)
	}
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("room", id)
	}
	return nil
}
