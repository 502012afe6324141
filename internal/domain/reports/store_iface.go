package reports

import "context"

type StoreAPI interface {
	Summary(ctx context.Context, month, year int) (Summary, error)
	DepartmentBreakdown(ctx context.Context, month, year int) ([]DepartmentTotals, error)
	TopEarners(ctx context.Context, month, year, limit int) ([]Earner, error)
	EmployeeHeader(ctx context.Context, employeeID string) (string, string, error)
	EmployeeHistory(ctx context.Context, employeeID string) ([]HistoryEntry, error)
	Counts(ctx context.Context) (active, total, departments, roles int, err error)
}
