package manager

import "time"

// Response is the externally visible shape of a manager. There is no
// password field here at all, so a hash can never leak into a payload.
type Response struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToResponse(m Manager) Response {
	return Response{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		CompanyName: m.CompanyName,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}
