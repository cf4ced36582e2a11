package postgres

import (
	"gorm.io/gorm"

	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*employeeDatamodel.Department, error) {
	var departments []*employeeDatamodel.Department
	err := r.db.Order("id ASC").Find(&departments).Error
	return departments, err
}

func (r *Repository) GetByID(id int64) (*employeeDatamodel.Department, error) {
	var d employeeDatamodel.Department
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(d *employeeDatamodel.Department) error {
	return r.db.Create(d).Error
}

func (r *Repository) Update(d *employeeDatamodel.Department) error {
	return r.db.Save(d).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&employeeDatamodel.Department{}, id).Error
}

func (r *Repository) ExistsName(name string, excludeID int64) (bool, error) {
	var count int64
	tx := r.db.Model(&employeeDatamodel.Department{}).Where("name = ?", name)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) HasEmployees(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).Where("department_id = ?", id).Count(&count).Error
	return count > 0, err
}
