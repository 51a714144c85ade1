package dto

import (
	"time"

	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/utils"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64     `json:"id"`
	Username    string     `json:"username"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
}

func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
		LastLogin:   user.LastLogin,
	}
}

// ListResponse is a page of records from the operator console
type ListResponse[T any] struct {
	Data       []T                      `json:"data"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// MemberDTO is a project or task membership in API responses
type MemberDTO struct {
	ID         uint64     `json:"id"`
	EmployeeID uint64     `json:"employee_id"`
	DateJoined time.Time  `json:"date_joined"`
	DateLeft   *time.Time `json:"date_left"`
	Active     bool       `json:"active"`
}

func ToProjectMemberDTO(m models.EmployeeProject) MemberDTO {
	return MemberDTO{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		DateJoined: m.DateJoined,
		DateLeft:   m.DateLeft,
		Active:     m.IsActive(),
	}
}

func ToTaskMemberDTO(m models.EmployeeTask) MemberDTO {
	return MemberDTO{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		DateJoined: m.DateJoined,
		DateLeft:   m.DateLeft,
		Active:     m.IsActive(),
	}
}

// ChoicesDTO lists the allowed values of every enumerated field
type ChoicesDTO map[string][]models.Choice

func AllChoices() ChoicesDTO {
	return ChoicesDTO{
		"employee_status": models.EmployeeStatusChoices,
		"employment_type": models.EmploymentTypeChoices,
		"paycheck_period": models.PaycheckPeriodChoices,
		"project_status":  models.ProjectStatusChoices,
		"task_status":     models.TaskStatusChoices,
	}
}
