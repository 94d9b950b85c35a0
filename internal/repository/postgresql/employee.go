package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/employee"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, email, password, department, position, manager_id,
			   social_username, status, is_active, approved_at, approved_by, created_at`

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE email = $1
	`

	found, err := scanEmployee(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return employee.Employee{}, err
	}
	return found, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	found, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return employee.Employee{}, err
	}
	return found, nil
}

// Create implements employee.EmployeeRepository. Status is forced to
// pending here, not taken from the caller.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (name, email, password, department, position, manager_id, social_username, status, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', true)
		RETURNING ` + employeeColumns + `
	`

	created, err := scanEmployee(r.db.QueryRow(ctx, query,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.PasswordHash,
		newEmployee.Department,
		newEmployee.Position,
		newEmployee.ManagerID,
		newEmployee.SocialUsername,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return created, nil
}

// UpdateStatus implements employee.EmployeeRepository. When approval is nil
// the approval columns are left exactly as they were.
func (r *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status, approval *employee.Approval) (employee.Employee, error) {
	var row pgx.Row
	if approval != nil {
		query := `
			UPDATE employees
			SET status = $1, approved_at = $2, approved_by = $3
			WHERE id = $4
			RETURNING ` + employeeColumns + `
		`
		row = r.db.QueryRow(ctx, query, status, approval.At, approval.By, id)
	} else {
		query := `
			UPDATE employees
			SET status = $1
			WHERE id = $2
			RETURNING ` + employeeColumns + `
		`
		row = r.db.QueryRow(ctx, query, status, id)
	}

	updated, err := scanEmployee(row)
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// ListPendingByManager implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListPendingByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE manager_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		e          employee.Employee
		approvedAt *time.Time
		approvedBy *string
	)
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.PasswordHash,
		&e.Department,
		&e.Position,
		&e.ManagerID,
		&e.SocialUsername,
		&e.Status,
		&e.IsActive,
		&approvedAt,
		&approvedBy,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	// approved_at and approved_by are written together; fold them into one
	// optional approval record.
	if approvedAt != nil && approvedBy != nil {
		e.Approval = &employee.Approval{At: *approvedAt, By: *approvedBy}
	}
	return e, nil
}

func translateEmployeePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return employee.ErrEmailExists
		case foreignKeyViolationCode:
			return manager.ErrManagerNotFound
		}
	}
	return err
}
