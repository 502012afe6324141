package role

import "context"

type StoreAPI interface {
	Create(ctx context.Context, role Role) (int64, error)
	List(ctx context.Context) ([]Role, error)
	Get(ctx context.Context, id int64) (*Role, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	EmployeeCount(ctx context.Context, id int64) (int, error)
}
