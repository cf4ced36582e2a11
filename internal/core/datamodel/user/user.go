package user

import (
	"time"
)

// Role names are a closed set; authorization works on these exact values.
const (
	RoleAdministrator = "Administrator"
	RoleEmployee      = "Employee"
	RoleMember        = "Member"
	RoleGuest         = "Guest"
)

type User struct {
	ID             int64     `gorm:"primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	DNI            string    `gorm:"column:dni;uniqueIndex;not null"`
	Email          string    `gorm:"uniqueIndex;not null"`
	PasswordHash   string    `gorm:"column:password_hash;not null"`
	Phone          string    `gorm:"column:phone"`
	IsActive       bool      `gorm:"column:is_active;default:true"`
	ProfilePicture *string   `gorm:"column:profile_picture"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`

	Roles []Role `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

type Role struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (Role) TableName() string {
	return "roles"
}

// HasRole reports whether the loaded role set contains the given role name.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = r.Name
	}
	return names
}
