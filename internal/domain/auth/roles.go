package auth

// Role scopes a bearer token to one of the two principal types.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func ValidRole(r Role) bool {
	return r == RoleManager || r == RoleEmployee
}
