package employee

import (
	"time"

	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
)

type UserRef struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DNI       string `json:"dni"`
	Email     string `json:"email"`
}

type DepartmentRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Response struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"user_id"`
	DepartmentID int64          `json:"department_id"`
	User         *UserRef       `json:"user,omitempty"`
	Department   *DepartmentRef `json:"department,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func FromDataModel(e *employeeDatamodel.Employee) Response {
	resp := Response{
		ID:           e.ID,
		UserID:       e.UserID,
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.User != nil {
		resp.User = &UserRef{
			ID:        e.User.ID,
			Username:  e.User.Username,
			FirstName: e.User.FirstName,
			LastName:  e.User.LastName,
			DNI:       e.User.DNI,
			Email:     e.User.Email,
		}
	}
	if e.Department != nil {
		resp.Department = &DepartmentRef{ID: e.Department.ID, Name: e.Department.Name}
	}
	return resp
}
