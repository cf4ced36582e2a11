package postgres

import (
	"errors"

	"gorm.io/gorm"

	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(limit, offset int) ([]*memberDatamodel.Member, error) {
	var members []*memberDatamodel.Member
	err := r.db.Preload("User").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&members).Error
	return members, err
}

func (r *Repository) GetByID(id int64) (*memberDatamodel.Member, error) {
	var m memberDatamodel.Member
	if err := r.db.Preload("User").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetByUserID(userID int64) (*memberDatamodel.Member, error) {
	var m memberDatamodel.Member
	err := r.db.Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(m *memberDatamodel.Member) error {
	return r.db.Create(m).Error
}

func (r *Repository) Update(m *memberDatamodel.Member) error {
	return r.db.Omit("User").Save(m).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&memberDatamodel.Member{}, id).Error
}

func (r *Repository) UserExists(userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ExistsMemberNumber(number int, excludeID int64) (bool, error) {
	var count int64
	tx := r.db.Model(&memberDatamodel.Member{}).Where("member_number = ?", number)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
