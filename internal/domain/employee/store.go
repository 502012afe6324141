package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const selectColumns = `
    e.id, e.employee_id, e.first_name, e.last_name, e.email, e.phone,
    e.date_of_birth, e.date_joined, e.is_active, e.role_id, e.department_id,
    e.bank_account, e.bank_name, e.created_at,
    COALESCE(r.title, ''), COALESCE(d.name, ''), COALESCE(d.code, '')`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.DateOfBirth, &emp.DateJoined, &emp.IsActive, &emp.RoleID, &emp.DepartmentID,
		&emp.BankAccount, &emp.BankName, &emp.CreatedAt,
		&emp.RoleTitle, &emp.DepartmentName, &emp.DepartmentCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Create(ctx context.Context, emp Employee) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (employee_id, first_name, last_name, email, phone, date_of_birth,
                           date_joined, role_id, department_id, bank_account, bank_name, is_active)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE)
    RETURNING id
  `, emp.EmployeeID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.DateOfBirth,
		emp.DateJoined, emp.RoleID, emp.DepartmentID, emp.BankAccount, emp.BankName).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (s *Store) GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+selectColumns+`
    FROM employees e
    LEFT JOIN roles r ON e.role_id = r.id
    LEFT JOIN departments d ON e.department_id = d.id
    WHERE e.employee_id = $1
  `, employeeID)
	return scanEmployee(row)
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Employee, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 2)

	if filter.ActiveOnly {
		where = append(where, "e.is_active")
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		where = append(where, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.RoleID != nil {
		args = append(args, *filter.RoleID)
		where = append(where, fmt.Sprintf("e.role_id = $%d", len(args)))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	paging := ""
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		paging = fmt.Sprintf(" LIMIT $%d", len(args))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			paging += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := s.DB.Query(ctx, `
    SELECT`+selectColumns+`
    FROM employees e
    LEFT JOIN roles r ON e.role_id = r.id
    LEFT JOIN departments d ON e.department_id = d.id
    `+whereClause+`
    ORDER BY e.last_name, e.first_name`+paging+`
  `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (s *Store) Search(ctx context.Context, term string) ([]Employee, error) {
	pattern := "%" + term + "%"
	rows, err := s.DB.Query(ctx, `
    SELECT`+selectColumns+`
    FROM employees e
    LEFT JOIN roles r ON e.role_id = r.id
    LEFT JOIN departments d ON e.department_id = d.id
    WHERE e.first_name ILIKE $1 OR e.last_name ILIKE $1 OR e.email ILIKE $1
    ORDER BY e.last_name, e.first_name
  `, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]Employee, error) {
	var employees []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
			&emp.DateOfBirth, &emp.DateJoined, &emp.IsActive, &emp.RoleID, &emp.DepartmentID,
			&emp.BankAccount, &emp.BankName, &emp.CreatedAt,
			&emp.RoleTitle, &emp.DepartmentName, &emp.DepartmentCode); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) Update(ctx context.Context, employeeID string, fields UpdateFields) (bool, error) {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.FirstName != nil {
		appendSet("first_name", *fields.FirstName)
	}
	if fields.LastName != nil {
		appendSet("last_name", *fields.LastName)
	}
	if fields.Phone != nil {
		appendSet("phone", *fields.Phone)
	}
	if fields.DateOfBirth != nil {
		appendSet("date_of_birth", *fields.DateOfBirth)
	}
	if fields.DateJoined != nil {
		appendSet("date_joined", *fields.DateJoined)
	}
	if fields.RoleID != nil {
		appendSet("role_id", *fields.RoleID)
	}
	if fields.DepartmentID != nil {
		appendSet("department_id", *fields.DepartmentID)
	}
	if fields.BankAccount != nil {
		appendSet("bank_account", *fields.BankAccount)
	}
	if fields.BankName != nil {
		appendSet("bank_name", *fields.BankName)
	}
	if len(sets) == 0 {
		return false, ErrNoFields
	}

	args = append(args, employeeID)
	query := fmt.Sprintf("UPDATE employees SET %s WHERE employee_id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := s.DB.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) SetActive(ctx context.Context, employeeID string, active bool) (bool, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE employees SET is_active = $1 WHERE employee_id = $2", active, employeeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "employees_email_key":
			return ErrEmailTaken
		case "employees_employee_id_key":
			return ErrIDGenerationFailed
		}
	}
	return err
}
