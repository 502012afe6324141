package department

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	departments map[int64]*Department
	employees   map[int64]int
	nextID      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{departments: make(map[int64]*Department), employees: make(map[int64]int)}
}

func (f *fakeStore) Create(_ context.Context, dept Department) (int64, error) {
	for _, existing := range f.departments {
		if existing.Name == dept.Name {
			return 0, ErrNameTaken
		}
		if existing.Code == dept.Code {
			return 0, ErrCodeTaken
		}
	}
	f.nextID++
	dept.ID = f.nextID
	f.departments[dept.ID] = &dept
	return dept.ID, nil
}

func (f *fakeStore) List(_ context.Context) ([]Department, error) {
	out := make([]Department, 0, len(f.departments))
	for _, dept := range f.departments {
		out = append(out, *dept)
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (*Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *dept
	return &copied, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, fields UpdateFields) (bool, error) {
	dept, ok := f.departments[id]
	if !ok {
		return false, nil
	}
	if fields.Name != nil {
		dept.Name = *fields.Name
	}
	if fields.Code != nil {
		dept.Code = *fields.Code
	}
	if fields.Budget != nil {
		dept.Budget = *fields.Budget
	}
	if fields.Description != nil {
		dept.Description = *fields.Description
	}
	return true, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.departments[id]; !ok {
		return false, nil
	}
	delete(f.departments, id)
	return true, nil
}

func (f *fakeStore) EmployeeCount(_ context.Context, id int64) (int, error) {
	return f.employees[id], nil
}

func TestCreateNormalizesInput(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	id, err := svc.Create(context.Background(), Department{Name: "  Engineering ", Code: "eng", Budget: 5000000})
	require.NoError(t, err)

	dept, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Engineering", dept.Name)
	require.Equal(t, "ENG", dept.Code)
}

func TestCreateRejectsInvalid(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Create(context.Background(), Department{Name: "  ", Code: "X"})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), Department{Name: "Ops", Code: "OPS", Budget: -1})
	require.Error(t, err)
}

func TestCreateDuplicateName(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Create(context.Background(), Department{Name: "Finance", Code: "FIN"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), Department{Name: "Finance", Code: "FI2"})
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestUpdateRequiresFields(t *testing.T) {
	svc := NewService(newFakeStore())
	require.ErrorIs(t, svc.Update(context.Background(), 1, UpdateFields{}), ErrNoFields)
}

func TestUpdateMissingDepartment(t *testing.T) {
	svc := NewService(newFakeStore())
	name := "Sales"
	require.ErrorIs(t, svc.Update(context.Background(), 42, UpdateFields{Name: &name}), ErrNotFound)
}

func TestDeleteGuardedByEmployees(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	id, err := svc.Create(context.Background(), Department{Name: "Sales", Code: "SAL"})
	require.NoError(t, err)

	store.employees[id] = 3
	require.ErrorIs(t, svc.Delete(context.Background(), id), ErrHasEmployees)

	store.employees[id] = 0
	require.NoError(t, svc.Delete(context.Background(), id))
	require.ErrorIs(t, svc.Delete(context.Background(), id), ErrNotFound)
}
