package employee

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusSuspended Status = "suspended"
)

// ValidTargetStatus reports whether s is a status a manager may set.
// "pending" is only ever the initial state, never a target.
func ValidTargetStatus(s Status) bool {
	return s == StatusApproved || s == StatusRejected || s == StatusSuspended
}

// Approval records who approved an employee and when. It is present iff an
// approval has happened; rejection and suspension never touch it, so a
// previously approved then suspended employee keeps its approval history.
type Approval struct {
	At time.Time
	By string
}

type Employee struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Department     string
	Position       string
	ManagerID      string
	SocialUsername *string
	Status         Status
	IsActive       bool
	Approval       *Approval
	CreatedAt      time.Time
}
