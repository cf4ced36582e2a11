package department

import (
	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
)

type Response struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromDataModel(d *employeeDatamodel.Department) Response {
	return Response{ID: d.ID, Name: d.Name}
}

type DepartmentDTO struct {
	Name string `json:"name"`
}

func (d DepartmentDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(100)
	return v.Validate()
}
