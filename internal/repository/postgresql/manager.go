package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/database"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type managerRepositoryImpl struct {
	db database.Querier
}

func NewManagerRepository(db database.Querier) manager.ManagerRepository {
	return &managerRepositoryImpl{db: db}
}

const managerColumns = `id, name, email, password, company_name, is_active, created_at`

// GetByEmail implements manager.ManagerRepository.
func (r *managerRepositoryImpl) GetByEmail(ctx context.Context, email string) (manager.Manager, error) {
	query := `
		SELECT ` + managerColumns + `
		FROM managers
		WHERE email = $1
	`

	found, err := scanManager(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return manager.Manager{}, err
	}
	return found, nil
}

// GetByID implements manager.ManagerRepository.
func (r *managerRepositoryImpl) GetByID(ctx context.Context, id string) (manager.Manager, error) {
	query := `
		SELECT ` + managerColumns + `
		FROM managers
		WHERE id = $1
	`

	found, err := scanManager(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return manager.Manager{}, err
	}
	return found, nil
}

// Create implements manager.ManagerRepository. The unique index on email is
// the authoritative guard against concurrent duplicate registrations.
func (r *managerRepositoryImpl) Create(ctx context.Context, newManager manager.Manager) (manager.Manager, error) {
	query := `
		INSERT INTO managers (name, email, password, company_name, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING ` + managerColumns + `
	`

	created, err := scanManager(r.db.QueryRow(ctx, query,
		newManager.Name,
		newManager.Email,
		newManager.PasswordHash,
		newManager.CompanyName,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return manager.Manager{}, manager.ErrEmailExists
		}
		return manager.Manager{}, err
	}
	return created, nil
}

func scanManager(row pgx.Row) (manager.Manager, error) {
	var m manager.Manager
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.CompanyName,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return manager.Manager{}, manager.ErrManagerNotFound
		}
		return manager.Manager{}, err
	}
	return m, nil
}
