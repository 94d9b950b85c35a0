package response

import (
	"errors"
	"net/http"

	"github.com/tagtrack/tagtrack-backend-go/internal/domain/auth"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/employee"
	"github.com/tagtrack/tagtrack-backend-go/internal/domain/manager"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrPendingApproval):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Manager domain errors
	case errors.Is(err, manager.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, manager.ErrManagerNotFound):
		BadRequest(w, "Manager not found", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNotEmployeeManager):
		Forbidden(w, "You can only manage your own employees")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid status value", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
