package employee

import (
	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
)

type CreateEmployeeDTO struct {
	UserID       int64 `json:"user_id"`
	DepartmentID int64 `json:"department_id"`
}

func (d CreateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("user_id", d.UserID).Custom(func(interface{}) string {
		if d.UserID <= 0 {
			return "el campo user_id es obligatorio"
		}
		return ""
	})
	v.Field("department_id", d.DepartmentID).Custom(func(interface{}) string {
		if d.DepartmentID <= 0 {
			return "el campo department_id es obligatorio"
		}
		return ""
	})
	return v.Validate()
}

type UpdateEmployeeDTO struct {
	DepartmentID *int64 `json:"department_id"`
}

func (d UpdateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.DepartmentID != nil {
		v.Field("department_id", *d.DepartmentID).Custom(func(interface{}) string {
			if *d.DepartmentID <= 0 {
				return "el campo department_id es obligatorio"
			}
			return ""
		})
	}
	return v.Validate()
}
