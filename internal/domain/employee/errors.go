package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("employee with this email already exists")
	ErrNotEmployeeManager = errors.New("unauthorized to update this employee")
	ErrInvalidStatus      = errors.New("invalid employee status")
)
