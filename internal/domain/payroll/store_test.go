package payroll

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertTranslatesDuplicatePeriod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)

	anyArgs := make([]interface{}, 17)
	for i := range anyArgs {
		anyArgs[i] = pgxmock.AnyArg()
	}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payrolls")).
		WithArgs(anyArgs...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "payrolls_employee_period_key"})

	_, err = store.Insert(context.Background(), &Record{
		PayrollID:   "PAY202412000007",
		EmployeeRow: 7,
		Month:       12,
		Year:        2024,
		Status:      StatusGenerated,
	})
	require.ErrorIs(t, err, ErrDuplicatePeriod)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreEmployeeForGenerationNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery("SELECT e.id, e.employee_id").
		WithArgs("EMP404").
		WillReturnError(pgx.ErrNoRows)

	_, err = store.EmployeeForGeneration(context.Background(), "EMP404")
	require.ErrorIs(t, err, ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorePeriodExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM payrolls")).
		WithArgs(int64(7), 12, 2024).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := store.PeriodExists(context.Background(), 7, 12, 2024)
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
