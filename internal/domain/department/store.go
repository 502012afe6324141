package department

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

func (s *Store) Create(ctx context.Context, dept Department) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (name, code, budget, description)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, dept.Name, dept.Code, dept.Budget, dept.Description).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (s *Store) List(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.id, d.name, d.code, d.budget, d.description, d.created_at,
           COUNT(e.id) AS employee_count
    FROM departments d
    LEFT JOIN employees e ON e.department_id = d.id AND e.is_active
    GROUP BY d.id
    ORDER BY d.name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []Department
	for rows.Next() {
		var dept Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Code, &dept.Budget, &dept.Description, &dept.CreatedAt, &dept.EmployeeCount); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (*Department, error) {
	var dept Department
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, code, budget, description, created_at
    FROM departments
    WHERE id = $1
  `, id).Scan(&dept.ID, &dept.Name, &dept.Code, &dept.Budget, &dept.Description, &dept.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (s *Store) Update(ctx context.Context, id int64, fields UpdateFields) (bool, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Name != nil {
		appendSet("name", *fields.Name)
	}
	if fields.Code != nil {
		appendSet("code", *fields.Code)
	}
	if fields.Budget != nil {
		appendSet("budget", *fields.Budget)
	}
	if fields.Description != nil {
		appendSet("description", *fields.Description)
	}
	if len(sets) == 0 {
		return false, ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE departments SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := s.DB.Exec(ctx, query, args...)
	if err != nil {
		return false, translateError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, "DELETE FROM departments WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) EmployeeCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE department_id = $1", id).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "departments_name_key":
			return ErrNameTaken
		case "departments_code_key":
			return ErrCodeTaken
		}
	}
	return err
}
