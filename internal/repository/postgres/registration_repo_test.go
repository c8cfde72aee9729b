package postgres

import (
	"context"
	"testing"
	"time"

	"eventmanagement/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		mock         func(mock sqlmock.Sqlmock)
		wantConflict bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_registrations \(event_id, participant_id, registration_date, attendance_status\)`).
					WithArgs(int64(1), int64(2), ts, domain.AttendanceRegistered).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate pair is conflict",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_registrations`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "event_registrations_pkey"})
			},
			wantConflict: true,
		},
		{
			name: "missing event is conflict via foreign key",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_registrations`).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "event_registrations_event_id_fkey"})
			},
			wantConflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Create(ctx, &domain.Registration{
				EventID:          1,
				ParticipantID:    2,
				RegistrationDate: ts,
				AttendanceStatus: domain.AttendanceRegistered,
			})
			if tt.wantConflict {
				require.True(t, domain.IsConflict(err))
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_GetByEventAndParticipant_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT event_id, participant_id, registration_date, attendance_status`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "participant_id", "registration_date", "attendance_status"}))

	repo := NewRegistrationRepository(db)
	got, err := repo.GetByEventAndParticipant(ctx, 1, 2)
	require.Nil(t, got)
	require.True(t, domain.IsNotFound(err))
	require.EqualError(t, err, "registration event 1, participant 2 not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		rows         int64
		wantNotFound bool
	}{
		{name: "success", rows: 1},
		{name: "missing registration", rows: 0, wantNotFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`UPDATE event_registrations\s+SET attendance_status = \$1`).
				WithArgs(domain.AttendanceAttended, int64(1), int64(2)).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			repo := NewRegistrationRepository(db)
			err = repo.UpdateStatus(ctx, 1, 2, domain.AttendanceAttended)
			if tt.wantNotFound {
				require.True(t, domain.IsNotFound(err))
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_CountByParticipantID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM event_registrations WHERE participant_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	repo := NewRegistrationRepository(db)
	count, err := repo.CountByParticipantID(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
