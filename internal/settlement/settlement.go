package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	settlementDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/settlement"
)

const DateLayout = "2006-01-02"

type Response struct {
	ID                int64           `json:"id"`
	SettlementDate    string          `json:"settlement_date"`
	SettlementDateRes *string         `json:"settlement_date_res"`
	Amount            decimal.Decimal `json:"amount"`
	Price             decimal.Decimal `json:"price"`
	SettlementStatus  string          `json:"settlement_status"`
	MemberID          int64           `json:"member_id"`
	OilID             int64           `json:"oil_id"`
	EmployeeID        *int64          `json:"employee_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromDataModel(s *settlementDatamodel.Settlement) Response {
	resp := Response{
		ID:               s.ID,
		SettlementDate:   s.SettlementDate.Format(DateLayout),
		Amount:           s.Amount,
		Price:            s.Price,
		SettlementStatus: s.SettlementStatus,
		MemberID:         s.MemberID,
		OilID:            s.OilID,
		EmployeeID:       s.EmployeeID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if s.SettlementDateRes != nil {
		formatted := s.SettlementDateRes.Format(DateLayout)
		resp.SettlementDateRes = &formatted
	}
	return resp
}
