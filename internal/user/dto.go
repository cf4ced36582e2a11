package user

import (
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
)

var allowedRoles = []string{
	userDatamodel.RoleAdministrator,
	userDatamodel.RoleEmployee,
	userDatamodel.RoleMember,
	userDatamodel.RoleGuest,
}

type CreateUserDTO struct {
	Username       string   `json:"username"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	DNI            string   `json:"dni"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Phone          string   `json:"phone"`
	ProfilePicture *string  `json:"profile_picture"`
	Roles          []string `json:"roles"`
}

func (d CreateUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).Required().MinLength(3).MaxLength(50)
	v.Field("first_name", d.FirstName).Required().MaxLength(100)
	v.Field("last_name", d.LastName).Required().MaxLength(100)
	v.Field("dni", d.DNI).Required().DNI()
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required().MinLength(8)
	v.Field("roles", "").Custom(func(interface{}) string {
		for _, role := range d.Roles {
			valid := false
			for _, allowed := range allowedRoles {
				if role == allowed {
					valid = true
					break
				}
			}
			if !valid {
				return "el campo roles contiene un rol desconocido"
			}
		}
		return ""
	})
	return v.Validate()
}

// UpdateUserDTO carries a partial patch; nil fields are left untouched.
type UpdateUserDTO struct {
	Username       *string  `json:"username"`
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	DNI            *string  `json:"dni"`
	Email          *string  `json:"email"`
	Password       *string  `json:"password"`
	Phone          *string  `json:"phone"`
	IsActive       *bool    `json:"is_active"`
	ProfilePicture *string  `json:"profile_picture"`
	Roles          []string `json:"roles"`
}

func (d UpdateUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.Username != nil {
		v.Field("username", *d.Username).Required().MinLength(3).MaxLength(50)
	}
	if d.DNI != nil {
		v.Field("dni", *d.DNI).Required().DNI()
	}
	if d.Email != nil {
		v.Field("email", *d.Email).Required().Email()
	}
	if d.Password != nil {
		v.Field("password", *d.Password).Required().MinLength(8)
	}
	if d.Roles != nil {
		v.Field("roles", "").Custom(func(interface{}) string {
			for _, role := range d.Roles {
				valid := false
				for _, allowed := range allowedRoles {
					if role == allowed {
						valid = true
						break
					}
				}
				if !valid {
					return "el campo roles contiene un rol desconocido"
				}
			}
			return ""
		})
	}
	return v.Validate()
}
