package reports

import (
	"context"
	"time"
)

const (
	defaultTopEarners = 10
	maxTopEarners     = 100
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

func validPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year > 0
}

func (s *Service) MonthlySummary(ctx context.Context, month, year int) (Summary, error) {
	if !validPeriod(month, year) {
		return Summary{}, ErrInvalidPeriod
	}
	return s.store.Summary(ctx, month, year)
}

func (s *Service) DepartmentBreakdown(ctx context.Context, month, year int) ([]DepartmentTotals, error) {
	if !validPeriod(month, year) {
		return nil, ErrInvalidPeriod
	}
	rows, err := s.store.DepartmentBreakdown(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []DepartmentTotals{}
	}
	return rows, nil
}

func (s *Service) TopEarners(ctx context.Context, month, year, limit int) ([]Earner, error) {
	if !validPeriod(month, year) {
		return nil, ErrInvalidPeriod
	}
	if limit <= 0 {
		limit = defaultTopEarners
	}
	if limit > maxTopEarners {
		limit = maxTopEarners
	}
	earners, err := s.store.TopEarners(ctx, month, year, limit)
	if err != nil {
		return nil, err
	}
	if earners == nil {
		earners = []Earner{}
	}
	return earners, nil
}

func (s *Service) EmployeeHistory(ctx context.Context, employeeID string) (*History, error) {
	id, name, err := s.store.EmployeeHeader(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.EmployeeHistory(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	hist := &History{EmployeeID: id, EmployeeName: name, Entries: entries}
	for _, e := range entries {
		hist.TotalGross += e.GrossSalary
		hist.TotalNet += e.NetSalary
	}
	hist.TotalGross = round2(hist.TotalGross)
	hist.TotalNet = round2(hist.TotalNet)
	return hist, nil
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	active, total, departments, roles, err := s.store.Counts(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	current, err := s.store.Summary(ctx, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		ActiveEmployees: active,
		TotalEmployees:  total,
		Departments:     departments,
		Roles:           roles,
		CurrentMonth:    current,
	}, nil
}
