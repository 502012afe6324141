package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"payrollms/internal/auth"
	"payrollms/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureOperator(ctx, pool, cfg.OperatorEmail, cfg.OperatorPassword); err != nil {
		return err
	}
	if cfg.SeedSampleData {
		if err := seedSampleData(ctx, pool); err != nil {
			return err
		}
	}
	return nil
}

func ensureOperator(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM operators WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, "INSERT INTO operators (email, password_hash) VALUES ($1, $2)", email, hash)
	return err
}

type seedDepartment struct {
	name   string
	code   string
	budget float64
}

type seedRole struct {
	title     string
	base      float64
	housing   float64
	transport float64
}

var sampleDepartments = []seedDepartment{
	{"Engineering", "ENG", 5000000},
	{"Sales", "SAL", 3000000},
	{"Marketing", "MKT", 2000000},
	{"Human Resources", "HR", 1500000},
	{"Finance", "FIN", 2500000},
}

var sampleRoles = []seedRole{
	{"Software Engineer", 120000, 20000, 10000},
	{"Senior Software Engineer", 180000, 30000, 15000},
	{"Sales Executive", 80000, 15000, 10000},
	{"Sales Manager", 150000, 25000, 15000},
	{"Marketing Specialist", 90000, 15000, 10000},
	{"HR Manager", 130000, 20000, 10000},
	{"Finance Officer", 100000, 15000, 10000},
	{"Finance Manager", 160000, 25000, 15000},
}

func seedSampleData(ctx context.Context, pool *pgxpool.Pool) error {
	for _, dept := range sampleDepartments {
		_, err := pool.Exec(ctx, `
      INSERT INTO departments (name, code, budget)
      VALUES ($1, $2, $3)
      ON CONFLICT (name) DO NOTHING
    `, dept.name, dept.code, dept.budget)
		if err != nil {
			return err
		}
	}

	for _, role := range sampleRoles {
		_, err := pool.Exec(ctx, `
      INSERT INTO roles (title, base_salary, housing_allowance, transport_allowance)
      VALUES ($1, $2, $3, $4)
      ON CONFLICT (title) DO NOTHING
    `, role.title, role.base, role.housing, role.transport)
		if err != nil {
			return err
		}
	}

	return nil
}
