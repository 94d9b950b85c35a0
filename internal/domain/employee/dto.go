package employee

import "time"

// Response is the externally visible shape of an employee. The password
// hash has no field here, so it cannot be serialized.
type Response struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Department     string     `json:"department"`
	Position       string     `json:"position"`
	ManagerID      string     `json:"manager_id"`
	SocialUsername *string    `json:"social_username,omitempty"`
	Status         Status     `json:"status"`
	IsActive       bool       `json:"is_active"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToResponse(e Employee) Response {
	resp := Response{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Department:     e.Department,
		Position:       e.Position,
		ManagerID:      e.ManagerID,
		SocialUsername: e.SocialUsername,
		Status:         e.Status,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
	}
	if e.Approval != nil {
		at := e.Approval.At
		by := e.Approval.By
		resp.ApprovedAt = &at
		resp.ApprovedBy = &by
	}
	return resp
}

func ToResponses(employees []Employee) []Response {
	responses := make([]Response, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToResponse(e))
	}
	return responses
}
