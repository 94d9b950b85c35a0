package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/auth"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/employee"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/jwt"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/password"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type testEnv struct {
	managerRepo  *fakeManagerRepo
	employeeRepo *fakeEmployeeRepo
	hasher       *password.Hasher
	tokens       *jwt.JWTService
	service      *AuthServiceImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		managerRepo:  newFakeManagerRepo(),
		employeeRepo: newFakeEmployeeRepo(),
		hasher:       password.NewHasher(bcrypt.MinCost),
		tokens:       jwt.NewJWTService(testSecret, 168*time.Hour),
	}
	env.service = NewAuthService(env.managerRepo, env.employeeRepo, env.hasher, env.tokens).(*AuthServiceImpl)
	return env
}

func (env *testEnv) registerManager(t *testing.T, email string) manager.Manager {
	t.Helper()
	m, err := env.service.RegisterManager(context.Background(), auth.RegisterManagerRequest{
		Name:        "Alice",
		Email:       email,
		Password:    "password123",
		CompanyName: "Corp Inc",
	})
	require.NoError(t, err)
	return m
}

func (env *testEnv) registerEmployee(t *testing.T, email, managerID string) employee.Employee {
	t.Helper()
	e, err := env.service.RegisterEmployee(context.Background(), auth.RegisterEmployeeRequest{
		Name:       "Bob",
		Email:      email,
		Password:   "password123",
		Department: "Marketing",
		Position:   "Analyst",
		ManagerID:  managerID,
	})
	require.NoError(t, err)
	return e
}

func TestAuthService_RegisterManager_Success(t *testing.T) {
	env := newTestEnv(t)

	created := env.registerManager(t, "alice@corp.com")

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, "Corp Inc", created.CompanyName)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.True(t, env.hasher.Verify("password123", created.PasswordHash))
}

func TestAuthService_RegisterManager_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.registerManager(t, "alice@corp.com")

	_, err := env.service.RegisterManager(context.Background(), auth.RegisterManagerRequest{
		Name:        "Other Alice",
		Email:       "alice@corp.com",
		Password:    "different456",
		CompanyName: "Other Corp",
	})
	assert.ErrorIs(t, err, manager.ErrEmailExists)
}

func TestAuthService_RegisterEmployee_Success(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")

	created := env.registerEmployee(t, "bob@corp.com", m.ID)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, employee.StatusPending, created.Status)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.Approval)
	assert.Equal(t, m.ID, created.ManagerID)
	assert.True(t, env.hasher.Verify("password123", created.PasswordHash))
}

func TestAuthService_RegisterEmployee_ManagerNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.RegisterEmployee(context.Background(), auth.RegisterEmployeeRequest{
		Name:       "Bob",
		Email:      "bob@corp.com",
		Password:   "password123",
		Department: "Marketing",
		Position:   "Analyst",
		ManagerID:  "no-such-manager",
	})
	assert.ErrorIs(t, err, manager.ErrManagerNotFound)
}

func TestAuthService_RegisterEmployee_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	env.registerEmployee(t, "bob@corp.com", m.ID)

	_, err := env.service.RegisterEmployee(context.Background(), auth.RegisterEmployeeRequest{
		Name:       "Bob Two",
		Email:      "bob@corp.com",
		Password:   "password123",
		Department: "Sales",
		Position:   "Rep",
		ManagerID:  m.ID,
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestAuthService_LoginManager_Success(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")

	loggedIn, token, err := env.service.LoginManager(context.Background(), auth.LoginRequest{
		Email:    "alice@corp.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, m.ID, loggedIn.ID)

	identity, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, m.ID, identity.UserID)
	assert.Equal(t, auth.RoleManager, identity.Role)
}

func TestAuthService_LoginManager_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.registerManager(t, "alice@corp.com")

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@corp.com", "wrongpassword"},
		{"unknown email", "nobody@corp.com", "password123"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := env.service.LoginManager(context.Background(), auth.LoginRequest{
				Email:    c.email,
				Password: c.password,
			})
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginManager_Inactive(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")

	// Deactivated out of band; same error as a wrong password.
	deactivated := env.managerRepo.managers[m.ID]
	deactivated.IsActive = false
	env.managerRepo.managers[m.ID] = deactivated

	_, _, err := env.service.LoginManager(context.Background(), auth.LoginRequest{
		Email:    "alice@corp.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_LoginEmployee_PendingBlocksLogin(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	env.registerEmployee(t, "bob@corp.com", m.ID)

	_, _, err := env.service.LoginEmployee(context.Background(), auth.LoginRequest{
		Email:    "bob@corp.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrPendingApproval)
}

// Status is checked before the password, so a pending employee never learns
// whether the password was right.
func TestAuthService_LoginEmployee_PendingWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	env.registerEmployee(t, "bob@corp.com", m.ID)

	_, _, err := env.service.LoginEmployee(context.Background(), auth.LoginRequest{
		Email:    "bob@corp.com",
		Password: "totally-wrong",
	})
	assert.ErrorIs(t, err, auth.ErrPendingApproval)
}

func TestAuthService_LoginEmployee_Inactive(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", m.ID)

	inactive := env.employeeRepo.employees[e.ID]
	inactive.IsActive = false
	env.employeeRepo.employees[e.ID] = inactive

	// The active check comes before the status check.
	_, _, err := env.service.LoginEmployee(context.Background(), auth.LoginRequest{
		Email:    "bob@corp.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_LoginEmployee_ApprovedSucceeds(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", m.ID)

	_, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusApproved),
	}, m.ID)
	require.NoError(t, err)

	loggedIn, token, err := env.service.LoginEmployee(context.Background(), auth.LoginRequest{
		Email:    "bob@corp.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, e.ID, loggedIn.ID)

	identity, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, e.ID, identity.UserID)
	assert.Equal(t, auth.RoleEmployee, identity.Role)
}

func TestAuthService_LoginEmployee_WrongPasswordAfterApproval(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", m.ID)

	_, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusApproved),
	}, m.ID)
	require.NoError(t, err)

	_, _, err = env.service.LoginEmployee(context.Background(), auth.LoginRequest{
		Email:    "bob@corp.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_LoginManagerWithGoogle(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")

	loggedIn, token, err := env.service.LoginManagerWithGoogle(context.Background(), "alice@corp.com", "google-id-1")
	require.NoError(t, err)
	assert.Equal(t, m.ID, loggedIn.ID)

	identity, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleManager, identity.Role)

	// Unknown Google email never provisions a manager.
	_, _, err = env.service.LoginManagerWithGoogle(context.Background(), "stranger@corp.com", "google-id-2")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = env.managerRepo.GetByEmail(context.Background(), "stranger@corp.com")
	assert.ErrorIs(t, err, manager.ErrManagerNotFound)
}

func TestAuthService_UpdateEmployeeStatus_Approve(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", m.ID)

	approveTime := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	env.service.now = func() time.Time { return approveTime }

	updated, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusApproved),
	}, m.ID)
	require.NoError(t, err)

	assert.Equal(t, employee.StatusApproved, updated.Status)
	require.NotNil(t, updated.Approval)
	assert.Equal(t, approveTime, updated.Approval.At)
	assert.Equal(t, m.ID, updated.Approval.By)
}

func TestAuthService_UpdateEmployeeStatus_RejectLeavesApprovalUnset(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", m.ID)

	updated, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusRejected),
	}, m.ID)
	require.NoError(t, err)

	assert.Equal(t, employee.StatusRejected, updated.Status)
	assert.Nil(t, updated.Approval)
}

// Suspending a previously approved employee keeps the approval history.
func TestAuthService_UpdateEmployeeStatus_SuspendKeepsApprovalHistory(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", m.ID)

	approveTime := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	env.service.now = func() time.Time { return approveTime }

	_, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusApproved),
	}, m.ID)
	require.NoError(t, err)

	suspended, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusSuspended),
	}, m.ID)
	require.NoError(t, err)

	assert.Equal(t, employee.StatusSuspended, suspended.Status)
	require.NotNil(t, suspended.Approval)
	assert.Equal(t, approveTime, suspended.Approval.At)
	assert.Equal(t, m.ID, suspended.Approval.By)
}

// Re-approving is a permitted no-op that refreshes the approval record.
func TestAuthService_UpdateEmployeeStatus_ReapproveRefreshesRecord(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", m.ID)

	first := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	env.service.now = func() time.Time { return first }
	_, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusApproved),
	}, m.ID)
	require.NoError(t, err)

	second := first.Add(48 * time.Hour)
	env.service.now = func() time.Time { return second }
	updated, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusApproved),
	}, m.ID)
	require.NoError(t, err)

	require.NotNil(t, updated.Approval)
	assert.Equal(t, second, updated.Approval.At)
}

func TestAuthService_UpdateEmployeeStatus_ForeignManagerForbidden(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerManager(t, "alice@corp.com")
	intruder := env.registerManager(t, "mallory@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", owner.ID)

	for _, status := range []employee.Status{
		employee.StatusApproved, employee.StatusRejected, employee.StatusSuspended,
	} {
		_, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
			EmployeeID: e.ID,
			Status:     string(status),
		}, intruder.ID)
		assert.ErrorIs(t, err, employee.ErrNotEmployeeManager, "status %s", status)
	}
}

func TestAuthService_UpdateEmployeeStatus_NotFound(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")

	_, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: "no-such-employee",
		Status:     string(employee.StatusApproved),
	}, m.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAuthService_UpdateEmployeeStatus_InvalidTarget(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	e := env.registerEmployee(t, "bob@corp.com", m.ID)

	// "pending" is an initial state, never a target.
	_, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: e.ID,
		Status:     string(employee.StatusPending),
	}, m.ID)
	assert.ErrorIs(t, err, employee.ErrInvalidStatus)
}

func TestAuthService_GetPendingEmployees(t *testing.T) {
	env := newTestEnv(t)
	m := env.registerManager(t, "alice@corp.com")
	other := env.registerManager(t, "carol@corp.com")

	first := env.registerEmployee(t, "bob@corp.com", m.ID)
	second := env.registerEmployee(t, "dan@corp.com", m.ID)
	env.registerEmployee(t, "eve@corp.com", other.ID)

	// Approved employees drop out of the pending list.
	approved := env.registerEmployee(t, "frank@corp.com", m.ID)
	_, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: approved.ID,
		Status:     string(employee.StatusApproved),
	}, m.ID)
	require.NoError(t, err)

	pending, err := env.service.GetPendingEmployees(context.Background(), m.ID)
	require.NoError(t, err)

	require.Len(t, pending, 2)
	assert.Equal(t, second.ID, pending[0].ID, "newest first")
	assert.Equal(t, first.ID, pending[1].ID)
}

// Full walkthrough: manager registers, employee registers under them,
// approval unlocks login and the token carries the employee identity.
func TestAuthService_ApprovalScenario(t *testing.T) {
	env := newTestEnv(t)

	managerA := env.registerManager(t, "a@x.com")
	employeeB := env.registerEmployee(t, "b@x.com", managerA.ID)
	assert.Equal(t, employee.StatusPending, employeeB.Status)

	_, _, err := env.service.LoginEmployee(context.Background(), auth.LoginRequest{
		Email:    "b@x.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrPendingApproval)

	updated, err := env.service.UpdateEmployeeStatus(context.Background(), auth.UpdateEmployeeStatusRequest{
		EmployeeID: employeeB.ID,
		Status:     string(employee.StatusApproved),
	}, managerA.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusApproved, updated.Status)
	require.NotNil(t, updated.Approval)
	assert.Equal(t, managerA.ID, updated.Approval.By)

	_, token, err := env.service.LoginEmployee(context.Background(), auth.LoginRequest{
		Email:    "b@x.com",
		Password: "password123",
	})
	require.NoError(t, err)

	identity, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, employeeB.ID, identity.UserID)
	assert.Equal(t, auth.RoleEmployee, identity.Role)
}
