package manager

import "context"

// ManagerRepository is the persistence contract for managers. Lookups return
// ErrManagerNotFound when no row matches. Email comparison happens in the
// store with the same byte-wise semantics as the unique index, so insertion
// and lookup agree on uniqueness.
type ManagerRepository interface {
	GetByEmail(ctx context.Context, email string) (Manager, error)
	GetByID(ctx context.Context, id string) (Manager, error)
	// Create persists a new manager; id and created_at are generated by the
	// store. Returns ErrEmailExists on a unique violation.
	Create(ctx context.Context, newManager Manager) (Manager, error)
}
