package employee

import "context"

type StoreAPI interface {
	Create(ctx context.Context, emp Employee) (int64, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, error)
	Search(ctx context.Context, term string) ([]Employee, error)
	Update(ctx context.Context, employeeID string, fields UpdateFields) (bool, error)
	SetActive(ctx context.Context, employeeID string, active bool) (bool, error)
}
