package payroll

import (
	"context"
	"time"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

// Generate creates the single payroll record for (employee, month,
// year). Preconditions are checked in order: active employee, role
// assigned, no existing record for the period. The role's salary
// components are snapshotted into the record; the store's uniqueness
// constraint backs the duplicate check, so a concurrent insert for the
// same period also comes back as ErrDuplicatePeriod.
func (s *Service) Generate(ctx context.Context, employeeID string, month, year int, otherDeductions float64) (*Record, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}
	if otherDeductions < 0 {
		return nil, ErrNegativeDeduction
	}

	snap, err := s.store.EmployeeForGeneration(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !snap.HasRole {
		return nil, ErrNoRoleAssigned
	}

	exists, err := s.store.PeriodExists(ctx, snap.RowID, month, year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePeriod
	}

	gross := snap.BaseSalary + snap.HousingAllowance + snap.TransportAllowance +
		snap.MedicalAllowance + snap.OtherAllowance
	deductions := CalculateDeductions(gross)
	total := deductions.Total() + otherDeductions

	rec := &Record{
		EmployeeRow:        snap.RowID,
		PayrollID:          NewPayrollID(year, month, snap.RowID),
		EmployeeID:         snap.EmployeeID,
		EmployeeName:       snap.FirstName + " " + snap.LastName,
		Month:              month,
		Year:               year,
		BaseSalary:         snap.BaseSalary,
		HousingAllowance:   snap.HousingAllowance,
		TransportAllowance: snap.TransportAllowance,
		MedicalAllowance:   snap.MedicalAllowance,
		OtherAllowance:     snap.OtherAllowance,
		GrossSalary:        gross,
		TaxDeduction:       deductions.Tax,
		HealthDeduction:    deductions.Health,
		PensionDeduction:   deductions.Pension,
		OtherDeductions:    otherDeductions,
		TotalDeductions:    total,
		NetSalary:          gross - total,
		Status:             StatusGenerated,
		GeneratedAt:        s.now(),
	}

	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return rec, nil
}

// GenerateAll runs Generate for every eligible employee. Per-employee
// failures are collected, not fatal: the batch is best-effort and
// partial success is acceptable.
func (s *Service) GenerateAll(ctx context.Context, month, year int) (*BatchResult, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}

	employeeIDs, err := s.store.EligibleEmployees(ctx, month, year)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for _, employeeID := range employeeIDs {
		if _, err := s.Generate(ctx, employeeID, month, year, 0); err != nil {
			result.Failures = append(result.Failures, BatchFailure{EmployeeID: employeeID, Reason: err.Error()})
			continue
		}
		result.Generated++
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, payrollID string) (*Record, error) {
	return s.store.GetByPayrollID(ctx, payrollID)
}

// Approve marks a record approved. Re-approving is allowed and leaves
// the record approved.
func (s *Service) Approve(ctx context.Context, payrollID string) error {
	updated, err := s.store.UpdateStatus(ctx, payrollID, StatusApproved)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// MarkPaid stamps the payment date, defaulting to today. Paying a
// record straight from generated is permitted; the approve step is a
// recommendation, not a gate.
func (s *Service) MarkPaid(ctx context.Context, payrollID string, paymentDate *time.Time) error {
	when := s.now()
	if paymentDate != nil {
		when = *paymentDate
	}
	updated, err := s.store.MarkPaid(ctx, payrollID, when)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Register(ctx context.Context, month, year int) ([]RegisterRow, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}
	return s.store.RegisterRows(ctx, month, year)
}
