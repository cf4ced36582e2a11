package member

import (
	"time"

	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

type Member struct {
	ID           int64     `gorm:"primaryKey"`
	UserID       int64     `gorm:"column:user_id;uniqueIndex;not null"`
	MemberNumber int       `gorm:"column:member_number;uniqueIndex;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	User *userDatamodel.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Member) TableName() string {
	return "members"
}
