package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	summaries map[[2]int]Summary
	breakdown []DepartmentTotals
	earners   []Earner
	employees map[string]string
	history   map[string][]HistoryEntry

	lastLimit int

	active, total, departments, roles int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		summaries: make(map[[2]int]Summary),
		employees: make(map[string]string),
		history:   make(map[string][]HistoryEntry),
	}
}

func (f *fakeStore) Summary(_ context.Context, month, year int) (Summary, error) {
	return f.summaries[[2]int{month, year}], nil
}

func (f *fakeStore) DepartmentBreakdown(_ context.Context, _, _ int) ([]DepartmentTotals, error) {
	return f.breakdown, nil
}

func (f *fakeStore) TopEarners(_ context.Context, _, _, limit int) ([]Earner, error) {
	f.lastLimit = limit
	if limit < len(f.earners) {
		return f.earners[:limit], nil
	}
	return f.earners, nil
}

func (f *fakeStore) EmployeeHeader(_ context.Context, employeeID string) (string, string, error) {
	name, ok := f.employees[employeeID]
	if !ok {
		return "", "", ErrEmployeeNotFound
	}
	return employeeID, name, nil
}

func (f *fakeStore) EmployeeHistory(_ context.Context, employeeID string) ([]HistoryEntry, error) {
	return f.history[employeeID], nil
}

func (f *fakeStore) Counts(_ context.Context) (int, int, int, int, error) {
	return f.active, f.total, f.departments, f.roles, nil
}

func TestMonthlySummaryRejectsInvalidPeriod(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.MonthlySummary(context.Background(), 13, 2024)
	require.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.MonthlySummary(context.Background(), 0, 2024)
	require.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.MonthlySummary(context.Background(), 6, 0)
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestMonthlySummaryEmptyPeriodIsZero(t *testing.T) {
	svc := NewService(newFakeStore())

	sum, err := svc.MonthlySummary(context.Background(), 12, 2024)
	require.NoError(t, err)
	require.Equal(t, Summary{}, sum)
}

func TestDepartmentBreakdownEmptyReturnsSlice(t *testing.T) {
	svc := NewService(newFakeStore())

	rows, err := svc.DepartmentBreakdown(context.Background(), 12, 2024)
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestTopEarnersLimitDefaultsAndCaps(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	_, err := svc.TopEarners(context.Background(), 12, 2024, 0)
	require.NoError(t, err)
	require.Equal(t, defaultTopEarners, store.lastLimit)

	_, err = svc.TopEarners(context.Background(), 12, 2024, 500)
	require.NoError(t, err)
	require.Equal(t, maxTopEarners, store.lastLimit)

	_, err = svc.TopEarners(context.Background(), 12, 2024, 3)
	require.NoError(t, err)
	require.Equal(t, 3, store.lastLimit)
}

func TestEmployeeHistoryTotals(t *testing.T) {
	store := newFakeStore()
	store.employees["EMP2412011230450001"] = "Jane Wanjiku"
	store.history["EMP2412011230450001"] = []HistoryEntry{
		{PayrollID: "PAY202412000001", Month: 12, Year: 2024, GrossSalary: 130000, TotalDeductions: 36563.15, NetSalary: 93436.85, Status: "paid"},
		{PayrollID: "PAY202411000001", Month: 11, Year: 2024, GrossSalary: 130000, TotalDeductions: 36563.15, NetSalary: 93436.85, Status: "approved"},
	}
	svc := NewService(store)

	hist, err := svc.EmployeeHistory(context.Background(), "EMP2412011230450001")
	require.NoError(t, err)
	require.Equal(t, "Jane Wanjiku", hist.EmployeeName)
	require.Len(t, hist.Entries, 2)
	require.InDelta(t, 260000, hist.TotalGross, 0.001)
	require.InDelta(t, 186873.70, hist.TotalNet, 0.001)
}

func TestEmployeeHistoryUnknownEmployee(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.EmployeeHistory(context.Background(), "EMP0000000000000000")
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDashboardUsesCurrentPeriod(t *testing.T) {
	store := newFakeStore()
	store.active = 7
	store.total = 9
	store.departments = 4
	store.roles = 6
	store.summaries[[2]int{3, 2025}] = Summary{EmployeeCount: 7, TotalGross: 700000, TotalDeductions: 180000, TotalNet: 520000, AverageNet: 74285.71}

	svc := NewService(store)
	svc.now = func() time.Time { return time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC) }

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, dash.ActiveEmployees)
	require.Equal(t, 9, dash.TotalEmployees)
	require.Equal(t, 4, dash.Departments)
	require.Equal(t, 6, dash.Roles)
	require.Equal(t, 7, dash.CurrentMonth.EmployeeCount)
	require.InDelta(t, 520000, dash.CurrentMonth.TotalNet, 0.001)
}
