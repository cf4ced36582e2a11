package employee

import (
	"time"

	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

// Department names used by the route allow-lists.
const (
	DepartmentEntries     = "Control de entradas"
	DepartmentAccounting  = "Contabilidad"
	DepartmentMemberAdmin = "Administración"
	DepartmentHR          = "RRHH"
	DepartmentLaboratory  = "Laboratorio"
)

type Department struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (Department) TableName() string {
	return "departments"
}

type Employee struct {
	ID           int64     `gorm:"primaryKey"`
	UserID       int64     `gorm:"column:user_id;uniqueIndex;not null"`
	DepartmentID int64     `gorm:"column:department_id;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	User       *userDatamodel.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Department *Department         `gorm:"foreignKey:DepartmentID"`
}

func (Employee) TableName() string {
	return "employees"
}
