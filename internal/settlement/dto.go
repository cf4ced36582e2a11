package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
	settlementDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/settlement"
)

type CreateSettlementDTO struct {
	SettlementDate string          `json:"settlement_date"`
	Amount         decimal.Decimal `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	MemberID       int64           `json:"member_id"`
	OilID          int64           `json:"oil_id"`
}

func (d CreateSettlementDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("settlement_date", d.SettlementDate).Required().Custom(validDate)
	v.Field("amount", d.Amount).MinDecimal(decimal.Zero)
	v.Field("price", d.Price).MinDecimal(decimal.Zero)
	v.Field("member_id", d.MemberID).Required()
	v.Field("oil_id", d.OilID).Required()
	return v.Validate()
}

// UpdateSettlementDTO resolves or amends a settlement. Setting
// settlement_status to Accepted or Cancelled resolves the request.
type UpdateSettlementDTO struct {
	SettlementDate   *string          `json:"settlement_date"`
	Amount           *decimal.Decimal `json:"amount"`
	Price            *decimal.Decimal `json:"price"`
	SettlementStatus *string          `json:"settlement_status"`
}

func (d UpdateSettlementDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.SettlementDate != nil {
		v.Field("settlement_date", *d.SettlementDate).Required().Custom(validDate)
	}
	if d.Amount != nil {
		v.Field("amount", *d.Amount).MinDecimal(decimal.Zero)
	}
	if d.Price != nil {
		v.Field("price", *d.Price).MinDecimal(decimal.Zero)
	}
	if d.SettlementStatus != nil {
		v.Field("settlement_status", *d.SettlementStatus).OneOf(
			settlementDatamodel.StatusPending,
			settlementDatamodel.StatusAccepted,
			settlementDatamodel.StatusCancelled,
		)
	}
	return v.Validate()
}

func validDate(value interface{}) string {
	s, ok := value.(string)
	if !ok || s == "" {
		return ""
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "el campo settlement_date debe tener el formato AAAA-MM-DD"
	}
	return ""
}
