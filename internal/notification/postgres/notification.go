package postgres

import (
	"gorm.io/gorm"

	notificationDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/notification"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(limit, offset int) ([]*notificationDatamodel.Notification, error) {
	var rows []*notificationDatamodel.Notification
	err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, err
}

func (r *Repository) GetSentByUser(userID int64, limit, offset int) ([]*notificationDatamodel.Notification, error) {
	var rows []*notificationDatamodel.Notification
	err := r.db.Where("sender_id = ?", userID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, err
}

func (r *Repository) GetReceivedByUser(userID int64, limit, offset int) ([]*notificationDatamodel.Notification, error) {
	var rows []*notificationDatamodel.Notification
	err := r.db.Where("receiver_id = ?", userID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, err
}

func (r *Repository) GetByID(id int64) (*notificationDatamodel.Notification, error) {
	var n notificationDatamodel.Notification
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) Create(n *notificationDatamodel.Notification) error {
	return r.db.Create(n).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&notificationDatamodel.Notification{}, id).Error
}

func (r *Repository) UserExists(userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}
