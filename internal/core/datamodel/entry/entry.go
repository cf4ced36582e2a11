package entry

import (
	"time"

	"github.com/shopspring/decimal"

	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
)

const (
	AnalysisStatusPending  = "Pending"
	AnalysisStatusComplete = "Complete"
)

// Entry is one olive delivery by a member. oil_quantity stays NULL until the
// lab analysis determines the resulting oil volume.
type Entry struct {
	ID             int64            `gorm:"primaryKey"`
	EntryDate      time.Time        `gorm:"column:entry_date;type:date;not null"`
	OliveQuantity  decimal.Decimal  `gorm:"column:olive_quantity;type:decimal(12,3);not null"`
	OilQuantity    *decimal.Decimal `gorm:"column:oil_quantity;type:decimal(12,3)"`
	AnalysisStatus string           `gorm:"column:analysis_status;default:Pending"`
	MemberID       int64            `gorm:"column:member_id;not null"`
	CreatedAt      time.Time        `gorm:"column:created_at"`
	UpdatedAt      time.Time        `gorm:"column:updated_at"`

	Member *memberDatamodel.Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

func (Entry) TableName() string {
	return "entries"
}
