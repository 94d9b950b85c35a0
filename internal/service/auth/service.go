package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tagtrack/tagtrack-backend-go/internal/domain/auth"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/employee"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/jwt"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/password"
)

type AuthServiceImpl struct {
	managerRepo  manager.ManagerRepository
	employeeRepo employee.EmployeeRepository
	hasher       *password.Hasher
	tokens       jwt.Service
	now          func() time.Time
}

func NewAuthService(
	managerRepo manager.ManagerRepository,
	employeeRepo employee.EmployeeRepository,
	hasher *password.Hasher,
	tokens jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		managerRepo:  managerRepo,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		tokens:       tokens,
		now:          time.Now,
	}
}

// RegisterManager implements auth.AuthService.
func (a *AuthServiceImpl) RegisterManager(ctx context.Context, req auth.RegisterManagerRequest) (manager.Manager, error) {
	_, err := a.managerRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return manager.Manager{}, manager.ErrEmailExists
	}
	if !errors.Is(err, manager.ErrManagerNotFound) {
		return manager.Manager{}, fmt.Errorf("failed to get manager by email: %w", err)
	}

	hashed, err := a.hasher.Hash(req.Password)
	if err != nil {
		return manager.Manager{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index backs this up if two registrations race past the
	// existence check; the repository reports that as ErrEmailExists too.
	created, err := a.managerRepo.Create(ctx, manager.Manager{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		CompanyName:  req.CompanyName,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, manager.ErrEmailExists) {
			return manager.Manager{}, err
		}
		return manager.Manager{}, fmt.Errorf("failed to create manager: %w", err)
	}
	return created, nil
}

// RegisterEmployee implements auth.AuthService. New employees always start
// pending regardless of the request payload.
func (a *AuthServiceImpl) RegisterEmployee(ctx context.Context, req auth.RegisterEmployeeRequest) (employee.Employee, error) {
	_, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.Employee{}, employee.ErrEmailExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if _, err := a.managerRepo.GetByID(ctx, req.ManagerID); err != nil {
		if errors.Is(err, manager.ErrManagerNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get manager by id: %w", err)
	}

	hashed, err := a.hasher.Hash(req.Password)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.employeeRepo.Create(ctx, employee.Employee{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hashed,
		Department:     req.Department,
		Position:       req.Position,
		ManagerID:      req.ManagerID,
		SocialUsername: req.SocialUsername,
		Status:         employee.StatusPending,
		IsActive:       true,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) || errors.Is(err, manager.ErrManagerNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// LoginManager implements auth.AuthService. Unknown email, inactive account
// and wrong password are indistinguishable to the caller.
func (a *AuthServiceImpl) LoginManager(ctx context.Context, req auth.LoginRequest) (manager.Manager, string, error) {
	managerData, err := a.managerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, manager.ErrManagerNotFound) {
			return manager.Manager{}, "", auth.ErrInvalidCredentials
		}
		return manager.Manager{}, "", fmt.Errorf("failed to get manager by email: %w", err)
	}
	if !managerData.IsActive {
		return manager.Manager{}, "", auth.ErrInvalidCredentials
	}

	if !a.hasher.Verify(req.Password, managerData.PasswordHash) {
		return manager.Manager{}, "", auth.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(managerData.ID, auth.RoleManager)
	if err != nil {
		return manager.Manager{}, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return managerData, token, nil
}

// LoginEmployee implements auth.AuthService. The check order is existence,
// active flag, approval status, then password: a pending employee sees the
// approval message even with a wrong password. Keep this order; swapping
// status and password changes what a probing caller can learn.
func (a *AuthServiceImpl) LoginEmployee(ctx context.Context, req auth.LoginRequest) (employee.Employee, string, error) {
	employeeData, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, "", auth.ErrInvalidCredentials
		}
		return employee.Employee{}, "", fmt.Errorf("failed to get employee by email: %w", err)
	}
	if !employeeData.IsActive {
		return employee.Employee{}, "", auth.ErrInvalidCredentials
	}

	if employeeData.Status != employee.StatusApproved {
		return employee.Employee{}, "", auth.ErrPendingApproval
	}

	if !a.hasher.Verify(req.Password, employeeData.PasswordHash) {
		return employee.Employee{}, "", auth.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(employeeData.ID, auth.RoleEmployee)
	if err != nil {
		return employee.Employee{}, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return employeeData, token, nil
}

// LoginManagerWithGoogle implements auth.AuthService. Only managers that
// already registered can sign in this way; employees have no OAuth path
// because it would skip the approval gate.
func (a *AuthServiceImpl) LoginManagerWithGoogle(ctx context.Context, email string, googleID string) (manager.Manager, string, error) {
	if email == "" {
		return manager.Manager{}, "", auth.ErrInvalidCredentials
	}

	managerData, err := a.managerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, manager.ErrManagerNotFound) {
			return manager.Manager{}, "", auth.ErrInvalidCredentials
		}
		return manager.Manager{}, "", fmt.Errorf("failed to get manager by email: %w", err)
	}
	if !managerData.IsActive {
		return manager.Manager{}, "", auth.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(managerData.ID, auth.RoleManager)
	if err != nil {
		return manager.Manager{}, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return managerData, token, nil
}

// UpdateEmployeeStatus implements auth.AuthService. Only the owning manager
// may change status. Approving (including re-approving) refreshes the
// approval record; rejecting or suspending leaves any prior record alone.
func (a *AuthServiceImpl) UpdateEmployeeStatus(ctx context.Context, req auth.UpdateEmployeeStatusRequest, actingManagerID string) (employee.Employee, error) {
	status := employee.Status(req.Status)
	if !employee.ValidTargetStatus(status) {
		return employee.Employee{}, employee.ErrInvalidStatus
	}

	employeeData, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	if employeeData.ManagerID != actingManagerID {
		return employee.Employee{}, employee.ErrNotEmployeeManager
	}

	var approval *employee.Approval
	if status == employee.StatusApproved {
		approval = &employee.Approval{At: a.now(), By: actingManagerID}
	}

	updated, err := a.employeeRepo.UpdateStatus(ctx, req.EmployeeID, status, approval)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee status: %w", err)
	}
	return updated, nil
}

// GetPendingEmployees implements auth.AuthService.
func (a *AuthServiceImpl) GetPendingEmployees(ctx context.Context, managerID string) ([]employee.Employee, error) {
	pending, err := a.employeeRepo.ListPendingByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending employees: %w", err)
	}
	return pending, nil
}
