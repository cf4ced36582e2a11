package postgres

import (
	"errors"

	"gorm.io/gorm"

	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(limit, offset int) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.Preload("User").Preload("Department").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&employees).Error
	return employees, err
}

func (r *Repository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	if err := r.db.Preload("User").Preload("Department").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) GetByUserID(userID int64) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := r.db.Where("user_id = ?", userID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(e *employeeDatamodel.Employee) error {
	return r.db.Create(e).Error
}

func (r *Repository) Update(e *employeeDatamodel.Employee) error {
	return r.db.Omit("User", "Department").Save(e).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&employeeDatamodel.Employee{}, id).Error
}

func (r *Repository) UserExists(userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) DepartmentExists(departmentID int64) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Department{}).Where("id = ?", departmentID).Count(&count).Error
	return count > 0, err
}
