package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"communityregistration/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, date, location`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(eventCols).
						AddRow("ev-1", "Game Jam Weekend", "48 hours", date, "Main Hall", 100, 7, true, date, date))
			},
			want: &domain.Event{
				ID: "ev-1", Title: "Game Jam Weekend", Description: "48 hours",
				Date: date, Location: "Main Hall", Capacity: 100, RegisteredCount: 7,
				RegistrationOpen: true, CreatedAt: date, UpdatedAt: date,
			},
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, date, location`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
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
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 18, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, date, location`).
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow("ev-1", "Game Jam Weekend", "", date, "Main Hall", 100, 7, true, date, date).
			AddRow("ev-2", "Intro to Open Source", "", date.AddDate(0, 1, 0), "Lab 2", 100, 2, true, date, date))

	repo := NewEventRepository(db)
	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "ev-1", events[0].ID)
	require.Equal(t, "Intro to Open Source", events[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, date, location`).
		WillReturnRows(sqlmock.NewRows(eventCols))

	repo := NewEventRepository(db)
	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}
