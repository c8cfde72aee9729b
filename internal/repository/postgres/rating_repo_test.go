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

func TestRatingRepository_Create_DuplicateIsConflict(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO ratings`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "ratings_session_id_participant_id_key"})

	repo := NewRatingRepository(db)
	err = repo.Create(ctx, &domain.Rating{SessionID: 1, ParticipantID: 2, Score: 5})
	require.Error(t, err)
	require.True(t, domain.IsConflict(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_AverageBySessionID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantAvg float64
		wantOK  bool
	}{
		{
			name: "average of scores",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT AVG\(score\) FROM ratings WHERE session_id = \$1`).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(3.8))
			},
			wantAvg: 3.8,
			wantOK:  true,
		},
		{
			name: "no ratings yields null",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT AVG\(score\) FROM ratings WHERE session_id = \$1`).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))
			},
			wantAvg: 0,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRatingRepository(db)
			avg, ok, err := repo.AverageBySessionID(ctx, 1)
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			require.InDelta(t, tt.wantAvg, avg, 1e-9)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRatingRepository_Update_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE ratings`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRatingRepository(db)
	err = repo.Update(ctx, &domain.Rating{ID: 99, Score: 4, UpdatedAt: time.Now()})
	require.True(t, domain.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_ListBySessionID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, session_id, participant_id, score, comment, created_at, updated_at FROM ratings WHERE session_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "participant_id", "score", "comment", "created_at", "updated_at"}).
			AddRow(int64(1), int64(5), int64(2), 4, "good talk", ts, ts).
			AddRow(int64(2), int64(5), int64(3), 5, "", ts, ts))

	repo := NewRatingRepository(db)
	ratings, err := repo.ListBySessionID(ctx, 5)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	require.Equal(t, 4, ratings[0].Score)
	require.Equal(t, "good talk", ratings[0].Comment)
	require.NoError(t, mock.ExpectationsWereMet())
}
