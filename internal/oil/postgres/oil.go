package postgres

import (
	"gorm.io/gorm"

	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(limit, offset int) ([]*oilDatamodel.Oil, error) {
	var oils []*oilDatamodel.Oil
	err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&oils).Error
	return oils, err
}

func (r *Repository) GetByID(id int64) (*oilDatamodel.Oil, error) {
	var o oilDatamodel.Oil
	if err := r.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(o *oilDatamodel.Oil) error {
	return r.db.Create(o).Error
}

func (r *Repository) Update(o *oilDatamodel.Oil) error {
	return r.db.Save(o).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&oilDatamodel.Oil{}, id).Error
}
