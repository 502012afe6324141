package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

// Create registers a new employee and returns the generated employee
// identifier. On an identifier collision the insert is retried once
// with a fresh identifier before giving up.
func (s *Service) Create(ctx context.Context, emp Employee) (string, error) {
	emp.FirstName = strings.TrimSpace(emp.FirstName)
	emp.LastName = strings.TrimSpace(emp.LastName)
	emp.Email = strings.ToLower(strings.TrimSpace(emp.Email))

	if emp.FirstName == "" || emp.LastName == "" {
		return "", fmt.Errorf("first and last name are required")
	}
	if emp.Email == "" {
		return "", fmt.Errorf("email is required")
	}
	if emp.DateJoined.IsZero() {
		return "", fmt.Errorf("date joined is required")
	}

	for attempt := 0; attempt < 2; attempt++ {
		emp.EmployeeID = NewEmployeeID(s.now())
		_, err := s.store.Create(ctx, emp)
		if errors.Is(err, ErrIDGenerationFailed) {
			continue
		}
		if err != nil {
			return "", err
		}
		return emp.EmployeeID, nil
	}
	return "", ErrIDGenerationFailed
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.GetByEmployeeID(ctx, employeeID)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Employee, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) Search(ctx context.Context, term string) ([]Employee, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("search term is required")
	}
	return s.store.Search(ctx, term)
}

func (s *Service) Update(ctx context.Context, employeeID string, fields UpdateFields) error {
	if fields.Empty() {
		return ErrNoFields
	}
	updated, err := s.store.Update(ctx, employeeID, fields)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// Deactivate soft-deletes: historical payroll records stay attached to
// the employee row.
func (s *Service) Deactivate(ctx context.Context, employeeID string) error {
	return s.setActive(ctx, employeeID, false)
}

func (s *Service) Activate(ctx context.Context, employeeID string) error {
	return s.setActive(ctx, employeeID, true)
}

func (s *Service) setActive(ctx context.Context, employeeID string, active bool) error {
	updated, err := s.store.SetActive(ctx, employeeID, active)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}
