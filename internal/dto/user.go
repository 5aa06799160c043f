package dto

import (
	"time"

	"github.com/vickhardth/site-pulse-api/internal/models"
)

// EmployeeDTO represents a user in roster and subordinate listings.
type EmployeeDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ManagerID *uint64   `json:"managerId"`
	DOB       time.Time `json:"dob"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SummaryDTO aggregates activity counts for the requester's visibility scope.
// ActiveEmployees is a distinct count of the free-text incharge field and is only
// present for supervisory callers.
type SummaryDTO struct {
	TotalActivities int64  `json:"totalActivities"`
	ActiveEmployees *int64 `json:"activeEmployees,omitempty"`
}

// ToEmployeeDTO converts a User model to EmployeeDTO
func ToEmployeeDTO(user models.User) EmployeeDTO {
	return EmployeeDTO{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ManagerID: user.ManagerID,
		DOB:       user.DOB,
	}
}

// ToEmployeeDTOs converts a slice of users
func ToEmployeeDTOs(users []models.User) []EmployeeDTO {
	dtos := make([]EmployeeDTO, len(users))
	for i, u := range users {
		dtos[i] = ToEmployeeDTO(u)
	}
	return dtos
}
