package auth

import (
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/employee"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/validator"
)

type RegisterManagerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"companyName"`
}

func (r *RegisterManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Valid email is required",
		})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must be at least 6 characters",
		})
	}
	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "companyName",
			Message: "Company name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterEmployeeRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	ManagerID      string  `json:"managerId"`
	SocialUsername *string `json:"socialUsername,omitempty"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Valid email is required",
		})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must be at least 6 characters",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "Department is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "Position is required",
		})
	}
	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "Manager ID is required",
		})
	} else if !validator.IsValidUUID(r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "Manager ID must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Valid email is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeStatusRequest struct {
	EmployeeID string `json:"employeeId"`
	Status     string `json:"status"`
}

func (r *UpdateEmployeeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID must be a valid UUID",
		})
	}
	if !validator.IsInSlice(r.Status, []string{
		string(employee.StatusApproved),
		string(employee.StatusRejected),
		string(employee.StatusSuspended),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Invalid status",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManagerLoginResponse is the login payload for managers: profile without
// password material, plus the bearer token.
type ManagerLoginResponse struct {
	User  manager.Response `json:"user"`
	Token string           `json:"token"`
	Role  string           `json:"role"`
}

// EmployeeLoginResponse mirrors ManagerLoginResponse for employees.
type EmployeeLoginResponse struct {
	User  employee.Response `json:"user"`
	Token string            `json:"token"`
	Role  string            `json:"role"`
}
