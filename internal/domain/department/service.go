package department

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, dept Department) (int64, error) {
	dept.Name = strings.TrimSpace(dept.Name)
	dept.Code = strings.ToUpper(strings.TrimSpace(dept.Code))
	if dept.Name == "" {
		return 0, fmt.Errorf("department name is required")
	}
	if dept.Budget < 0 {
		return 0, fmt.Errorf("department budget must be non-negative")
	}
	return s.store.Create(ctx, dept)
}

func (s *Service) List(ctx context.Context) ([]Department, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Department, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, fields UpdateFields) error {
	if fields.Empty() {
		return ErrNoFields
	}
	if fields.Budget != nil && *fields.Budget < 0 {
		return fmt.Errorf("department budget must be non-negative")
	}
	updated, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// Delete removes a department only when no employee references it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	count, err := s.store.EmployeeCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d employees", ErrHasEmployees, count)
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
