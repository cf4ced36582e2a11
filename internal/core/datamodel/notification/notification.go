package notification

import (
	"time"

	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Notification struct {
	ID         int64     `gorm:"primaryKey"`
	Message    string    `gorm:"not null"`
	Date       time.Time `gorm:"column:date;not null"`
	SenderID   int64     `gorm:"column:sender_id;not null"`
	ReceiverID int64     `gorm:"column:receiver_id;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`

	Sender   *userDatamodel.User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Receiver *userDatamodel.User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
}

func (Notification) TableName() string {
	return "notifications"
}
