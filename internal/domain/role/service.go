package role

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

func (s *Service) Create(ctx context.Context, role Role) (int64, error) {
	role.Title = strings.TrimSpace(role.Title)
	if role.Title == "" {
		return 0, fmt.Errorf("role title is required")
	}
	if err := validateAmounts(role.BaseSalary, role.HousingAllowance, role.TransportAllowance, role.MedicalAllowance, role.OtherAllowance); err != nil {
		return 0, err
	}
	return s.store.Create(ctx, role)
}

func (s *Service) List(ctx context.Context) ([]Role, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Role, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, fields UpdateFields) error {
	if fields.Empty() {
		return ErrNoFields
	}
	for _, amount := range []*float64{fields.BaseSalary, fields.HousingAllowance, fields.TransportAllowance, fields.MedicalAllowance, fields.OtherAllowance} {
		if amount != nil && *amount < 0 {
			return fmt.Errorf("salary amounts must be non-negative")
		}
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

// Delete removes a role only when no employee references it.
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

func validateAmounts(amounts ...float64) error {
	for _, amount := range amounts {
		if amount < 0 {
			return fmt.Errorf("salary amounts must be non-negative")
		}
	}
	return nil
}
