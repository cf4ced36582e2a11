package postgres

import (
	"gorm.io/gorm"

	entryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/entry"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(limit, offset int) ([]*entryDatamodel.Entry, error) {
	var entries []*entryDatamodel.Entry
	err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, err
}

func (r *Repository) GetAllByMember(memberID int64, limit, offset int) ([]*entryDatamodel.Entry, error) {
	var entries []*entryDatamodel.Entry
	err := r.db.Where("member_id = ?", memberID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

func (r *Repository) GetByID(id int64) (*entryDatamodel.Entry, error) {
	var e entryDatamodel.Entry
	if err := r.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(e *entryDatamodel.Entry) error {
	return r.db.Create(e).Error
}

func (r *Repository) Update(e *entryDatamodel.Entry) error {
	return r.db.Omit("Member").Save(e).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&entryDatamodel.Entry{}, id).Error
}

func (r *Repository) MemberExists(memberID int64) (bool, error) {
	var count int64
	err := r.db.Model(&memberDatamodel.Member{}).Where("id = ?", memberID).Count(&count).Error
	return count > 0, err
}

// MemberEmail resolves the email of the user behind a member, for the
// entry.created notification.
func (r *Repository) MemberEmail(memberID int64) (string, error) {
	var m memberDatamodel.Member
	if err := r.db.First(&m, memberID).Error; err != nil {
		return "", err
	}
	var u userDatamodel.User
	if err := r.db.First(&u, m.UserID).Error; err != nil {
		return "", err
	}
	return u.Email, nil
}
