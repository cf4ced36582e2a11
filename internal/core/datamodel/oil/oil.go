package oil

import (
	"time"

	"github.com/shopspring/decimal"
)

type Oil struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PhotoURL    string          `gorm:"column:photo_url"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (Oil) TableName() string {
	return "oils"
}
