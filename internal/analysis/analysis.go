package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	analysisDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/analysis"
)

const DateLayout = "2006-01-02"

type Response struct {
	ID           int64            `json:"id"`
	AnalysisDate string           `json:"analysis_date"`
	Acidity      decimal.Decimal  `json:"acidity"`
	Humidity     decimal.Decimal  `json:"humidity"`
	Yield        decimal.Decimal  `json:"yield"`
	EntryID      int64            `json:"entry_id"`
	EmployeeID   *int64           `json:"employee_id"`
	OilID        *int64           `json:"oil_id"`
	OilQuantity  *decimal.Decimal `json:"oil_quantity"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func FromDataModel(a *analysisDatamodel.Analysis) Response {
	return Response{
		ID:           a.ID,
		AnalysisDate: a.AnalysisDate.Format(DateLayout),
		Acidity:      a.Acidity,
		Humidity:     a.Humidity,
		Yield:        a.Yield,
		EntryID:      a.EntryID,
		EmployeeID:   a.EmployeeID,
		OilID:        a.OilID,
		OilQuantity:  a.OilQuantity,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
