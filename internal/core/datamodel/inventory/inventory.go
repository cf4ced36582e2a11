package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
)

// OilInventory is one stock movement of a given oil type for a member.
// The member's current stock per oil is the sum over these rows.
type OilInventory struct {
	ID        int64           `gorm:"primaryKey"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	MemberID  int64           `gorm:"column:member_id;not null"`
	OilID     int64           `gorm:"column:oil_id;not null"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`

	Member *memberDatamodel.Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Oil    *oilDatamodel.Oil       `gorm:"foreignKey:OilID;constraint:OnDelete:CASCADE"`
}

func (OilInventory) TableName() string {
	return "oil_inventories"
}

// OilSettlement is a finalized oil-quantity transaction. oil_id is nullable:
// the transaction survives deletion of the oil type.
type OilSettlement struct {
	ID             int64           `gorm:"primaryKey"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	SettlementDate time.Time       `gorm:"column:settlement_date;type:date;not null"`
	MemberID       int64           `gorm:"column:member_id;not null"`
	OilID          *int64          `gorm:"column:oil_id"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`

	Member *memberDatamodel.Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Oil    *oilDatamodel.Oil       `gorm:"foreignKey:OilID;constraint:OnDelete:SET NULL"`
}

func (OilSettlement) TableName() string {
	return "oil_settlements"
}
