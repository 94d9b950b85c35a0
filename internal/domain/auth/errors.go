package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, inactive account and wrong
	// password alike, so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials or account inactive")
	// ErrPendingApproval is the one login failure that IS distinguished:
	// the employee exists and is active but has not been approved yet.
	ErrPendingApproval = errors.New("account pending approval, please contact your manager")
	ErrInvalidToken    = errors.New("invalid or expired token")
)
