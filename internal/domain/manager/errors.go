package manager

import "errors"

var (
	ErrManagerNotFound = errors.New("manager not found")
	ErrEmailExists     = errors.New("manager with this email already exists")
)
