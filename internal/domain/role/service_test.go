package role

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	roles     map[int64]*Role
	employees map[int64]int
	nextID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{roles: make(map[int64]*Role), employees: make(map[int64]int)}
}

func (f *fakeStore) Create(_ context.Context, role Role) (int64, error) {
	for _, existing := range f.roles {
		if existing.Title == role.Title {
			return 0, ErrTitleTaken
		}
	}
	f.nextID++
	role.ID = f.nextID
	f.roles[role.ID] = &role
	return role.ID, nil
}

func (f *fakeStore) List(_ context.Context) ([]Role, error) {
	out := make([]Role, 0, len(f.roles))
	for _, role := range f.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (*Role, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *role
	return &copied, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, fields UpdateFields) (bool, error) {
	role, ok := f.roles[id]
	if !ok {
		return false, nil
	}
	if fields.Title != nil {
		role.Title = *fields.Title
	}
	if fields.BaseSalary != nil {
		role.BaseSalary = *fields.BaseSalary
	}
	return true, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.roles[id]; !ok {
		return false, nil
	}
	delete(f.roles, id)
	return true, nil
}

func (f *fakeStore) EmployeeCount(_ context.Context, id int64) (int, error) {
	return f.employees[id], nil
}

func TestGrossSalary(t *testing.T) {
	role := Role{BaseSalary: 100000, HousingAllowance: 20000, TransportAllowance: 10000}
	require.Equal(t, 30000.0, role.TotalAllowances())
	require.Equal(t, 130000.0, role.GrossSalary())
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Create(context.Background(), Role{Title: " ", BaseSalary: 1000})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), Role{Title: "Engineer", BaseSalary: -1})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), Role{Title: "Engineer", BaseSalary: 120000, HousingAllowance: -5})
	require.Error(t, err)
}

func TestCreateDuplicateTitle(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Create(context.Background(), Role{Title: "Engineer", BaseSalary: 120000})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), Role{Title: "Engineer", BaseSalary: 90000})
	require.ErrorIs(t, err, ErrTitleTaken)
}

func TestDeleteGuardedByEmployees(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	id, err := svc.Create(context.Background(), Role{Title: "Engineer", BaseSalary: 120000})
	require.NoError(t, err)

	store.employees[id] = 2
	require.ErrorIs(t, svc.Delete(context.Background(), id), ErrHasEmployees)

	store.employees[id] = 0
	require.NoError(t, svc.Delete(context.Background(), id))
}

func TestUpdateMissingRole(t *testing.T) {
	svc := NewService(newFakeStore())
	base := 90000.0
	require.ErrorIs(t, svc.Update(context.Background(), 9, UpdateFields{BaseSalary: &base}), ErrNotFound)
}
