package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/employee"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
)

// In-memory repositories mirroring the postgres contracts: not-found
// sentinels on missing rows, duplicate-email sentinels on insert, pending
// list ordered newest first.

type fakeManagerRepo struct {
	mu       sync.Mutex
	managers map[string]manager.Manager
}

func newFakeManagerRepo() *fakeManagerRepo {
	return &fakeManagerRepo{managers: make(map[string]manager.Manager)}
}

func (f *fakeManagerRepo) GetByEmail(_ context.Context, email string) (manager.Manager, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.managers {
		if m.Email == email {
			return m, nil
		}
	}
	return manager.Manager{}, manager.ErrManagerNotFound
}

func (f *fakeManagerRepo) GetByID(_ context.Context, id string) (manager.Manager, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.managers[id]; ok {
		return m, nil
	}
	return manager.Manager{}, manager.ErrManagerNotFound
}

func (f *fakeManagerRepo) Create(_ context.Context, newManager manager.Manager) (manager.Manager, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.managers {
		if m.Email == newManager.Email {
			return manager.Manager{}, manager.ErrEmailExists
		}
	}
	newManager.ID = uuid.NewString()
	newManager.CreatedAt = time.Now()
	f.managers[newManager.ID] = newManager
	return newManager, nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
	seq       int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	newEmployee.ID = uuid.NewString()
	newEmployee.Status = employee.StatusPending
	// Strictly increasing timestamps keep newest-first ordering stable.
	f.seq++
	newEmployee.CreatedAt = time.Unix(0, 0).Add(time.Duration(f.seq) * time.Minute)
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) UpdateStatus(_ context.Context, id string, status employee.Status, approval *employee.Approval) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	e.Status = status
	if approval != nil {
		e.Approval = &employee.Approval{At: approval.At, By: approval.By}
	}
	f.employees[id] = e
	return e, nil
}

func (f *fakeEmployeeRepo) ListPendingByManager(_ context.Context, managerID string) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pending := []employee.Employee{}
	for _, e := range f.employees {
		if e.ManagerID == managerID && e.Status == employee.StatusPending {
			pending = append(pending, e)
		}
	}
	// Newest first.
	for i := 0; i < len(pending); i++ {
		for j := i + 1; j < len(pending); j++ {
			if pending[j].CreatedAt.After(pending[i].CreatedAt) {
				pending[i], pending[j] = pending[j], pending[i]
			}
		}
	}
	return pending, nil
}
