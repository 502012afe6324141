package role

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

func (s *Store) Create(ctx context.Context, role Role) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO roles (title, base_salary, housing_allowance, transport_allowance, medical_allowance, other_allowance, description)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, role.Title, role.BaseSalary, role.HousingAllowance, role.TransportAllowance, role.MedicalAllowance, role.OtherAllowance, role.Description).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (s *Store) List(ctx context.Context) ([]Role, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.id, r.title, r.base_salary, r.housing_allowance, r.transport_allowance,
           r.medical_allowance, r.other_allowance, r.description, r.created_at,
           COUNT(e.id) AS employee_count
    FROM roles r
    LEFT JOIN employees e ON e.role_id = r.id AND e.is_active
    GROUP BY r.id
    ORDER BY r.title
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Title, &role.BaseSalary, &role.HousingAllowance, &role.TransportAllowance,
			&role.MedicalAllowance, &role.OtherAllowance, &role.Description, &role.CreatedAt, &role.EmployeeCount); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (*Role, error) {
	var role Role
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, base_salary, housing_allowance, transport_allowance,
           medical_allowance, other_allowance, description, created_at
    FROM roles
    WHERE id = $1
  `, id).Scan(&role.ID, &role.Title, &role.BaseSalary, &role.HousingAllowance, &role.TransportAllowance,
		&role.MedicalAllowance, &role.OtherAllowance, &role.Description, &role.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Store) Update(ctx context.Context, id int64, fields UpdateFields) (bool, error) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Title != nil {
		appendSet("title", *fields.Title)
	}
	if fields.BaseSalary != nil {
		appendSet("base_salary", *fields.BaseSalary)
	}
	if fields.HousingAllowance != nil {
		appendSet("housing_allowance", *fields.HousingAllowance)
	}
	if fields.TransportAllowance != nil {
		appendSet("transport_allowance", *fields.TransportAllowance)
	}
	if fields.MedicalAllowance != nil {
		appendSet("medical_allowance", *fields.MedicalAllowance)
	}
	if fields.OtherAllowance != nil {
		appendSet("other_allowance", *fields.OtherAllowance)
	}
	if fields.Description != nil {
		appendSet("description", *fields.Description)
	}
	if len(sets) == 0 {
		return false, ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE roles SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := s.DB.Exec(ctx, query, args...)
	if err != nil {
		return false, translateError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, "DELETE FROM roles WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) EmployeeCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE role_id = $1", id).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "roles_title_key" {
		return ErrTitleTaken
	}
	return err
}
