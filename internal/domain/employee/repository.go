package employee

import "context"

// EmployeeRepository is the persistence contract for employees. Lookups
// return ErrEmployeeNotFound when no row matches; email comparison follows
// the store's unique index semantics, same as the manager repository.
type EmployeeRepository interface {
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// Create persists a new employee with status forced to pending; id and
	// created_at are generated by the store. Returns ErrEmailExists on a
	// unique violation.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// UpdateStatus sets the status and, when approval is non-nil, the
	// approval columns. A nil approval leaves any prior approval untouched.
	UpdateStatus(ctx context.Context, id string, status Status, approval *Approval) (Employee, error)
	// ListPendingByManager returns pending employees owned by managerID,
	// newest first.
	ListPendingByManager(ctx context.Context, managerID string) ([]Employee, error)
}
