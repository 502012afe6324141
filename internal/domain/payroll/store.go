package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"payrollms/internal/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) EmployeeForGeneration(ctx context.Context, employeeID string) (*EmployeeSnapshot, error) {
	var snap EmployeeSnapshot
	var roleID *int64
	err := s.DB.QueryRow(ctx, `
    SELECT e.id, e.employee_id, e.first_name, e.last_name, e.role_id,
           COALESCE(r.base_salary, 0), COALESCE(r.housing_allowance, 0),
           COALESCE(r.transport_allowance, 0), COALESCE(r.medical_allowance, 0),
           COALESCE(r.other_allowance, 0)
    FROM employees e
    LEFT JOIN roles r ON e.role_id = r.id
    WHERE e.employee_id = $1 AND e.is_active
  `, employeeID).Scan(&snap.RowID, &snap.EmployeeID, &snap.FirstName, &snap.LastName, &roleID,
		&snap.BaseSalary, &snap.HousingAllowance, &snap.TransportAllowance,
		&snap.MedicalAllowance, &snap.OtherAllowance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	snap.HasRole = roleID != nil
	return &snap, nil
}

func (s *Store) PeriodExists(ctx context.Context, employeeRow int64, month, year int) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM payrolls WHERE employee_id = $1 AND month = $2 AND year = $3
  `, employeeRow, month, year).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Insert(ctx context.Context, rec *Record) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payrolls (payroll_id, employee_id, month, year, base_salary,
                          housing_allowance, transport_allowance, medical_allowance, other_allowance,
                          gross_salary, tax_deduction, nhif_deduction, nssf_deduction,
                          other_deductions, total_deductions, net_salary, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    RETURNING id
  `, rec.PayrollID, rec.EmployeeRow, rec.Month, rec.Year, rec.BaseSalary,
		rec.HousingAllowance, rec.TransportAllowance, rec.MedicalAllowance, rec.OtherAllowance,
		rec.GrossSalary, rec.TaxDeduction, rec.HealthDeduction, rec.PensionDeduction,
		rec.OtherDeductions, rec.TotalDeductions, rec.NetSalary, rec.Status).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicatePeriod
		}
		return 0, err
	}
	return id, nil
}

const recordColumns = `
    p.id, p.payroll_id, e.employee_id, e.first_name || ' ' || e.last_name,
    COALESCE(d.name, ''), p.month, p.year,
    p.base_salary, p.housing_allowance, p.transport_allowance, p.medical_allowance, p.other_allowance,
    p.gross_salary, p.tax_deduction, p.nhif_deduction, p.nssf_deduction,
    p.other_deductions, p.total_deductions, p.net_salary, p.status, p.payment_date, p.generated_at`

func (s *Store) GetByPayrollID(ctx context.Context, payrollID string) (*Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    SELECT`+recordColumns+`
    FROM payrolls p
    JOIN employees e ON p.employee_id = e.id
    LEFT JOIN departments d ON e.department_id = d.id
    WHERE p.payroll_id = $1
  `, payrollID).Scan(&rec.ID, &rec.PayrollID, &rec.EmployeeID, &rec.EmployeeName,
		&rec.Department, &rec.Month, &rec.Year,
		&rec.BaseSalary, &rec.HousingAllowance, &rec.TransportAllowance, &rec.MedicalAllowance, &rec.OtherAllowance,
		&rec.GrossSalary, &rec.TaxDeduction, &rec.HealthDeduction, &rec.PensionDeduction,
		&rec.OtherDeductions, &rec.TotalDeductions, &rec.NetSalary, &rec.Status, &rec.PaymentDate, &rec.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) UpdateStatus(ctx context.Context, payrollID, status string) (bool, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE payrolls SET status = $1 WHERE payroll_id = $2", status, payrollID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) MarkPaid(ctx context.Context, payrollID string, paymentDate time.Time) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payrolls SET status = $1, payment_date = $2 WHERE payroll_id = $3
  `, StatusPaid, paymentDate, payrollID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) EligibleEmployees(ctx context.Context, month, year int) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.employee_id
    FROM employees e
    WHERE e.is_active AND e.role_id IS NOT NULL
      AND NOT EXISTS (
        SELECT 1 FROM payrolls p
        WHERE p.employee_id = e.id AND p.month = $1 AND p.year = $2
      )
    ORDER BY e.id
  `, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) RegisterRows(ctx context.Context, month, year int) ([]RegisterRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.payroll_id, e.employee_id, e.first_name || ' ' || e.last_name,
           COALESCE(d.name, ''), p.month, p.year,
           p.base_salary, p.housing_allowance, p.transport_allowance, p.medical_allowance, p.other_allowance,
           p.gross_salary, p.tax_deduction, p.nhif_deduction, p.nssf_deduction,
           p.other_deductions, p.total_deductions, p.net_salary, p.status, p.payment_date
    FROM payrolls p
    JOIN employees e ON p.employee_id = e.id
    LEFT JOIN departments d ON e.department_id = d.id
    WHERE p.month = $1 AND p.year = $2
    ORDER BY e.last_name, e.first_name
  `, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RegisterRow
	for rows.Next() {
		var row RegisterRow
		if err := rows.Scan(&row.PayrollID, &row.EmployeeID, &row.EmployeeName,
			&row.Department, &row.Month, &row.Year,
			&row.BaseSalary, &row.HousingAllowance, &row.TransportAllowance, &row.MedicalAllowance, &row.OtherAllowance,
			&row.GrossSalary, &row.TaxDeduction, &row.HealthDeduction, &row.PensionDeduction,
			&row.OtherDeductions, &row.TotalDeductions, &row.NetSalary, &row.Status, &row.PaymentDate); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
