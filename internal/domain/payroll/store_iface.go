package payroll

import (
	"context"
	"time"
)

type StoreAPI interface {
	// EmployeeForGeneration resolves an active employee plus its role
	// snapshot; ErrEmployeeNotFound when the identifier does not match an
	// active employee.
	EmployeeForGeneration(ctx context.Context, employeeID string) (*EmployeeSnapshot, error)
	PeriodExists(ctx context.Context, employeeRow int64, month, year int) (bool, error)
	// Insert persists a record atomically; a concurrent duplicate for the
	// same (employee, month, year) surfaces as ErrDuplicatePeriod.
	Insert(ctx context.Context, rec *Record) (int64, error)
	GetByPayrollID(ctx context.Context, payrollID string) (*Record, error)
	UpdateStatus(ctx context.Context, payrollID, status string) (bool, error)
	MarkPaid(ctx context.Context, payrollID string, paymentDate time.Time) (bool, error)
	// EligibleEmployees lists active employees with a role assigned and
	// no record yet for the period.
	EligibleEmployees(ctx context.Context, month, year int) ([]string, error)
	RegisterRows(ctx context.Context, month, year int) ([]RegisterRow, error)
}
