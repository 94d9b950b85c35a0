package auth

import (
	"context"

	"github.com/tagtrack/tagtrack-backend-go/internal/domain/employee"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
)

type AuthService interface {
	RegisterManager(ctx context.Context, req RegisterManagerRequest) (manager.Manager, error)
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (employee.Employee, error)
	LoginManager(ctx context.Context, req LoginRequest) (manager.Manager, string, error)
	LoginEmployee(ctx context.Context, req LoginRequest) (employee.Employee, string, error)
	// LoginManagerWithGoogle authenticates an existing active manager by a
	// Google-verified email. There is no auto-provisioning and no employee
	// OAuth path; employees must go through the approval gate.
	LoginManagerWithGoogle(ctx context.Context, email string, googleID string) (manager.Manager, string, error)
	UpdateEmployeeStatus(ctx context.Context, req UpdateEmployeeStatusRequest, actingManagerID string) (employee.Employee, error)
	GetPendingEmployees(ctx context.Context, managerID string) ([]employee.Employee, error)
}
