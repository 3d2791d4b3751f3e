package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var registrantCols = []string{"id", "status", "registered_at", "first_name", "last_name", "email"}

func TestRegistrationRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT r.id, r.status, r.registered_at, u.first_name`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows(registrantCols).
			AddRow("reg-1", "confirmed", at, "Jane", "Doe", "jane@example.com").
			AddRow("reg-2", "confirmed", at.Add(time.Hour), "John", "Smith", "john@example.com"))

	repo := NewRegistrationRepository(db)
	regs, err := repo.ListByEventID(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	require.Equal(t, "reg-1", regs[0].RegistrationID)
	require.Equal(t, "jane@example.com", regs[0].Email)
	require.Equal(t, "Smith", regs[1].LastName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_ListByEventID_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT r.id, r.status, r.registered_at, u.first_name`).
		WithArgs("ev-1").
		WillReturnError(sql.ErrConnDone)

	repo := NewRegistrationRepository(db)
	_, err = repo.ListByEventID(context.Background(), "ev-1")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
