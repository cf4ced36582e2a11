package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	entryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/entry"
	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
)

// Analysis holds the lab measurements for one entry. The unique index on
// entry_id enforces the one-analysis-per-entry rule at the storage level.
type Analysis struct {
	ID           int64            `gorm:"primaryKey"`
	AnalysisDate time.Time        `gorm:"column:analysis_date;type:date;not null"`
	Acidity      decimal.Decimal  `gorm:"type:decimal(5,2);not null"`
	Humidity     decimal.Decimal  `gorm:"type:decimal(5,2);not null"`
	Yield        decimal.Decimal  `gorm:"column:yield;type:decimal(5,2);not null"`
	EntryID      int64            `gorm:"column:entry_id;uniqueIndex;not null"`
	EmployeeID   *int64           `gorm:"column:employee_id"`
	OilID        *int64           `gorm:"column:oil_id"`
	OilQuantity  *decimal.Decimal `gorm:"column:oil_quantity;type:decimal(12,3)"`
	CreatedAt    time.Time        `gorm:"column:created_at"`
	UpdatedAt    time.Time        `gorm:"column:updated_at"`

	Entry    *entryDatamodel.Entry       `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	Employee *employeeDatamodel.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
	Oil      *oilDatamodel.Oil           `gorm:"foreignKey:OilID;constraint:OnDelete:SET NULL"`
}

func (Analysis) TableName() string {
	return "analyses"
}
