package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	memberDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/member"
	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
)

const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusCancelled = "Cancelled"
)

// Settlement is a member's request to convert accumulated oil stock into a
// payout. settlement_date_res is set when an employee resolves the request.
type Settlement struct {
	ID                int64           `gorm:"primaryKey"`
	SettlementDate    time.Time       `gorm:"column:settlement_date;type:date;not null"`
	SettlementDateRes *time.Time      `gorm:"column:settlement_date_res;type:date"`
	Amount            decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SettlementStatus  string          `gorm:"column:settlement_status;default:Pending"`
	MemberID          int64           `gorm:"column:member_id;not null"`
	OilID             int64           `gorm:"column:oil_id;not null"`
	EmployeeID        *int64          `gorm:"column:employee_id"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`

	Member   *memberDatamodel.Member     `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Oil      *oilDatamodel.Oil           `gorm:"foreignKey:OilID"`
	Employee *employeeDatamodel.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
}

func (Settlement) TableName() string {
	return "settlements"
}
