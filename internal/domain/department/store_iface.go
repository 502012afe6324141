package department

import "context"

type StoreAPI interface {
	Create(ctx context.Context, dept Department) (int64, error)
	List(ctx context.Context) ([]Department, error)
	Get(ctx context.Context, id int64) (*Department, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	EmployeeCount(ctx context.Context, id int64) (int, error)
}
