package entry

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
	entryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/entry"
)

var oliveQuantityMin = decimal.NewFromInt(1)

type CreateEntryDTO struct {
	EntryDate     string          `json:"entry_date"`
	OliveQuantity decimal.Decimal `json:"olive_quantity"`
	MemberID      int64           `json:"member_id"`
}

func (d CreateEntryDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("entry_date", d.EntryDate).Required().Custom(validDate)
	v.Field("olive_quantity", d.OliveQuantity).MinDecimal(oliveQuantityMin)
	v.Field("member_id", d.MemberID).Required()
	return v.Validate()
}

type UpdateEntryDTO struct {
	EntryDate      *string          `json:"entry_date"`
	OliveQuantity  *decimal.Decimal `json:"olive_quantity"`
	AnalysisStatus *string          `json:"analysis_status"`
}

func (d UpdateEntryDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.EntryDate != nil {
		v.Field("entry_date", *d.EntryDate).Required().Custom(validDate)
	}
	if d.OliveQuantity != nil {
		v.Field("olive_quantity", *d.OliveQuantity).MinDecimal(oliveQuantityMin)
	}
	if d.AnalysisStatus != nil {
		v.Field("analysis_status", *d.AnalysisStatus).
			OneOf(entryDatamodel.AnalysisStatusPending, entryDatamodel.AnalysisStatusComplete)
	}
	return v.Validate()
}

func validDate(value interface{}) string {
	s, ok := value.(string)
	if !ok || s == "" {
		return ""
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "el campo entry_date debe tener el formato AAAA-MM-DD"
	}
	return ""
}
