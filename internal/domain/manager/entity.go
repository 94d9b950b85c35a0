package manager

import "time"

type Manager struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CompanyName  string
	IsActive     bool
	CreatedAt    time.Time
}
