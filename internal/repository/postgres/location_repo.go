package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmanagement/internal/domain"
)

type locationRepository struct {
	db DBTX
}

func NewLocationRepository(db DBTX) domain.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO locations (name, address, city, country, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		location.Name, location.Address, location.City, location.Country,
		location.Capacity, location.CreatedAt, location.UpdatedAt).
		Scan(&location.ID)
	return writeError(err)
}

func (r *locationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	query := `
		SELECT id, name, address, city, country, capacity, created_at, updated_at
		FROM locations
		WHERE id = $1
	`
	l := &domain.Location{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.Country, &l.Capacity, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("location", id)
		}
		return nil, err
	}
	return l, nil
}

func (r *locationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	query := `
		SELECT id, name, address, city, country, capacity, created_at, updated_at
		FROM locations
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		l := &domain.Location{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.Country, &l.Capacity, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []*domain.Location{}
	}
	return locations, nil
}

func (r *locationRepository) Update(ctx context.Context, location *domain.Location) error {
	query := `
		UPDATE locations
		SET name = $1, address = $2, city = $3, country = $4, capacity = $5, updated_at = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		location.Name, location.Address, location.City, location.Country,
		location.Capacity, location.UpdatedAt, location.ID)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("location", location.ID)
	}
	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return writeError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFound("location", id)
	}
	return nil
}
