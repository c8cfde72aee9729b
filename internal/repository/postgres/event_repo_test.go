package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventmanagement/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Title:      "GopherCon",
				StartDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:    time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
				Status:     domain.EventStatusDraft,
				CategoryID: 1,
				LocationID: 2,
				CreatedAt:  created,
				UpdatedAt:  created,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, description, start_date, end_date, status, category_id, location_id, created_at, updated_at\)`).
					WithArgs("GopherCon", "", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
						domain.EventStatusDraft, int64(1), int64(2), created, created).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		{
			name: "db error",
			event: &domain.Event{
				Title:      "Conf",
				CategoryID: 1,
				LocationID: 1,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		id           int64
		mock         func(mock sqlmock.Sqlmock)
		want         *domain.Event
		wantNotFound bool
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, start_date, end_date, status, category_id, location_id, created_at, updated_at FROM events`).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "start_date", "end_date", "status", "category_id", "location_id", "created_at", "updated_at"}).
						AddRow(int64(1), "GopherCon", "annual", ts, ts.AddDate(0, 0, 2), "published", int64(1), int64(2), ts, ts))
			},
			want: &domain.Event{
				ID:          1,
				Title:       "GopherCon",
				Description: "annual",
				StartDate:   ts,
				EndDate:     ts.AddDate(0, 0, 2),
				Status:      domain.EventStatusPublished,
				CategoryID:  1,
				LocationID:  2,
				CreatedAt:   ts,
				UpdatedAt:   ts,
			},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, start_date, end_date, status, category_id, location_id, created_at, updated_at FROM events`).
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			wantNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantNotFound {
				require.Error(t, err)
				require.True(t, domain.IsNotFound(err))
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Find_Filters(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	status := domain.EventStatusPublished
	locationID := int64(4)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Filter order is fixed: from, to, location, category, status, then
	// limit and offset.
	mock.ExpectQuery(`SELECT id, title, description, start_date, end_date, status, category_id, location_id, created_at, updated_at FROM events WHERE start_date >= \$1 AND end_date <= \$2 AND location_id = \$3 AND status = \$4 ORDER BY start_date, id LIMIT \$5 OFFSET \$6`).
		WithArgs(from, to, locationID, "published", 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "start_date", "end_date", "status", "category_id", "location_id", "created_at", "updated_at"}).
			AddRow(int64(1), "GopherCon", "", from, to, "published", int64(1), locationID, from, from))

	repo := NewEventRepository(db)
	events, err := repo.Find(ctx, domain.EventFilter{
		From:       &from,
		To:         &to,
		LocationID: &locationID,
		Status:     &status,
	}, domain.PaginationParams{Page: 2, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "GopherCon", events[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Find_Empty(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, start_date, end_date, status, category_id, location_id, created_at, updated_at FROM events ORDER BY start_date, id LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "start_date", "end_date", "status", "category_id", "location_id", "created_at", "updated_at"}))

	repo := NewEventRepository(db)
	events, err := repo.Find(ctx, domain.EventFilter{}, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		id           int64
		mock         func(mock sqlmock.Sqlmock)
		wantNotFound bool
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   42,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs(int64(42)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantNotFound {
				require.True(t, domain.IsNotFound(err))
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetWithDetails(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM events e\s+JOIN categories c ON c.id = e.category_id\s+JOIN locations l ON l.id = e.location_id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"e_id", "e_title", "e_description", "e_start", "e_end", "e_status", "e_cat", "e_loc", "e_created", "e_updated",
			"c_id", "c_name", "c_description", "c_created", "c_updated",
			"l_id", "l_name", "l_address", "l_city", "l_country", "l_capacity", "l_created", "l_updated",
		}).AddRow(
			int64(1), "GopherCon", "", ts, ts.AddDate(0, 0, 2), "published", int64(3), int64(4), ts, ts,
			int64(3), "Tech", "", ts, ts,
			int64(4), "Convention Center", "1 Main St", "Berlin", "DE", 5000, ts, ts,
		))
	mock.ExpectQuery(`SELECT event_id, participant_id, registration_date, attendance_status\s+FROM event_registrations`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "participant_id", "registration_date", "attendance_status"}).
			AddRow(int64(1), int64(9), ts, "registered"))

	repo := NewEventRepository(db)
	detail, err := repo.GetWithDetails(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "GopherCon", detail.Event.Title)
	require.Equal(t, "Tech", detail.Category.Name)
	require.Equal(t, "Berlin", detail.Location.City)
	require.Len(t, detail.Registrations, 1)
	require.Equal(t, domain.AttendanceRegistered, detail.Registrations[0].AttendanceStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}
