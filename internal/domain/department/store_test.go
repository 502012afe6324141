package department

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateTranslatesUniqueViolation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO departments")).
		WithArgs("Engineering", "ENG", float64(0), "").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "departments_name_key"})

	_, err = store.Create(context.Background(), Department{Name: "Engineering", Code: "ENG"})
	require.ErrorIs(t, err, ErrNameTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)
	created := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, code, budget, description, created_at")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "code", "budget", "description", "created_at"}).
			AddRow(int64(7), "Finance", "FIN", 2500000.0, "money things", created))

	dept, err := store.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "FIN", dept.Code)
	require.Equal(t, 2500000.0, dept.Budget)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreUpdateBuildsPartialSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)
	budget := 100.0

	mock.ExpectExec(regexp.QuoteMeta("UPDATE departments SET budget = $1 WHERE id = $2")).
		WithArgs(budget, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := store.Update(context.Background(), 3, UpdateFields{Budget: &budget})
	require.NoError(t, err)
	require.True(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}
