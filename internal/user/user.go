package user

import (
	"time"

	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

// User is the externally visible user shape. The password hash never leaves
// the persistence layer representation.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DNI            string    `json:"dni"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	IsActive       bool      `json:"is_active"`
	ProfilePicture *string   `json:"profile_picture"`
	Roles          []string  `json:"roles"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// MemberRef is the member sub-object of a user response.
type MemberRef struct {
	ID           int64 `json:"id"`
	MemberNumber int   `json:"member_number"`
}

// EmployeeRef is the employee sub-object of a user response.
type EmployeeRef struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
}

// Response is the transformed user. The member and employee sub-objects are
// derived from the role set at transform time: they appear only while the
// corresponding role is held, even if the underlying record still exists.
type Response struct {
	User
	Member   *MemberRef   `json:"member,omitempty"`
	Employee *EmployeeRef `json:"employee,omitempty"`
}

// ToResponse projects a user plus its loaded attachments. Pure: no writes,
// no lookups.
func (u *User) ToResponse(member *MemberRef, employee *EmployeeRef) Response {
	resp := Response{User: *u}
	if member != nil && u.HasRole(userDatamodel.RoleMember) {
		resp.Member = member
	}
	if employee != nil && u.HasRole(userDatamodel.RoleEmployee) {
		resp.Employee = employee
	}
	return resp
}

func FromDataModel(m *userDatamodel.User) *User {
	return &User{
		ID:             m.ID,
		Username:       m.Username,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		DNI:            m.DNI,
		Email:          m.Email,
		Phone:          m.Phone,
		IsActive:       m.IsActive,
		ProfilePicture: m.ProfilePicture,
		Roles:          m.RoleNames(),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
