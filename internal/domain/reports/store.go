package reports

import (
	"context"
	"errors"
	"math"

	"github.com/jackc/pgx/v5"

	"payrollms/internal/db"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) Summary(ctx context.Context, month, year int) (Summary, error) {
	var sum Summary
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COALESCE(SUM(gross_salary), 0),
           COALESCE(SUM(total_deductions), 0),
           COALESCE(SUM(net_salary), 0)
    FROM payrolls WHERE month = $1 AND year = $2
  `, month, year).Scan(&sum.EmployeeCount, &sum.TotalGross, &sum.TotalDeductions, &sum.TotalNet)
	if err != nil {
		return Summary{}, err
	}
	if sum.EmployeeCount > 0 {
		sum.AverageNet = round2(sum.TotalNet / float64(sum.EmployeeCount))
	}
	return sum, nil
}

func (s *Store) DepartmentBreakdown(ctx context.Context, month, year int) ([]DepartmentTotals, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT COALESCE(d.name, 'Unassigned'), COUNT(1),
           SUM(p.gross_salary), SUM(p.total_deductions), SUM(p.net_salary)
    FROM payrolls p
    JOIN employees e ON p.employee_id = e.id
    LEFT JOIN departments d ON e.department_id = d.id
    WHERE p.month = $1 AND p.year = $2
    GROUP BY COALESCE(d.name, 'Unassigned')
    ORDER BY SUM(p.net_salary) DESC
  `, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DepartmentTotals
	for rows.Next() {
		var dt DepartmentTotals
		if err := rows.Scan(&dt.Department, &dt.EmployeeCount, &dt.TotalGross, &dt.TotalDeductions, &dt.TotalNet); err != nil {
			return nil, err
		}
		result = append(result, dt)
	}
	return result, rows.Err()
}

func (s *Store) TopEarners(ctx context.Context, month, year, limit int) ([]Earner, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.payroll_id, e.employee_id, e.first_name || ' ' || e.last_name,
           COALESCE(d.name, ''), p.gross_salary, p.net_salary
    FROM payrolls p
    JOIN employees e ON p.employee_id = e.id
    LEFT JOIN departments d ON e.department_id = d.id
    WHERE p.month = $1 AND p.year = $2
    ORDER BY p.net_salary DESC, e.id
    LIMIT $3
  `, month, year, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Earner
	for rows.Next() {
		var e Earner
		if err := rows.Scan(&e.PayrollID, &e.EmployeeID, &e.EmployeeName, &e.Department, &e.GrossSalary, &e.NetSalary); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (s *Store) EmployeeHeader(ctx context.Context, employeeID string) (string, string, error) {
	var id, name string
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, first_name || ' ' || last_name FROM employees WHERE employee_id = $1
  `, employeeID).Scan(&id, &name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", ErrEmployeeNotFound
	}
	if err != nil {
		return "", "", err
	}
	return id, name, nil
}

func (s *Store) EmployeeHistory(ctx context.Context, employeeID string) ([]HistoryEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.payroll_id, p.month, p.year, p.gross_salary, p.total_deductions, p.net_salary, p.status
    FROM payrolls p
    JOIN employees e ON p.employee_id = e.id
    WHERE e.employee_id = $1
    ORDER BY p.year DESC, p.month DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(&h.PayrollID, &h.Month, &h.Year, &h.GrossSalary, &h.TotalDeductions, &h.NetSalary, &h.Status); err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}

func (s *Store) Counts(ctx context.Context) (active, total, departments, roles int, err error) {
	err = s.DB.QueryRow(ctx, `
    SELECT (SELECT COUNT(1) FROM employees WHERE is_active),
           (SELECT COUNT(1) FROM employees),
           (SELECT COUNT(1) FROM departments),
           (SELECT COUNT(1) FROM roles)
  `).Scan(&active, &total, &departments, &roles)
	return active, total, departments, roles, err
}
