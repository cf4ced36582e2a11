package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
)

var (
	percentMin = decimal.Zero
	percentMax = decimal.NewFromInt(100)
)

type CreateAnalysisDTO struct {
	AnalysisDate string           `json:"analysis_date"`
	Acidity      decimal.Decimal  `json:"acidity"`
	Humidity     decimal.Decimal  `json:"humidity"`
	Yield        decimal.Decimal  `json:"yield"`
	EntryID      int64            `json:"entry_id"`
	EmployeeID   *int64           `json:"employee_id"`
	OilID        *int64           `json:"oil_id"`
	OilQuantity  *decimal.Decimal `json:"oil_quantity"`
}

func (d CreateAnalysisDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("analysis_date", d.AnalysisDate).Required().Custom(validDate)
	v.Field("acidity", d.Acidity).RangeDecimal(percentMin, percentMax)
	v.Field("humidity", d.Humidity).RangeDecimal(percentMin, percentMax)
	v.Field("yield", d.Yield).RangeDecimal(percentMin, percentMax)
	v.Field("entry_id", d.EntryID).Required()
	v.Field("oil_quantity", d.OilQuantity).MinDecimal(decimal.Zero)
	v.Field("oil_id", d.OilID).Custom(func(interface{}) string {
		// oil type and quantity arrive together or not at all
		if (d.OilID == nil) != (d.OilQuantity == nil) {
			return "los campos oil_id y oil_quantity deben indicarse juntos"
		}
		return ""
	})
	return v.Validate()
}

// Completes reports whether the payload carries the resulting oil data, which
// turns the create into a completion.
func (d CreateAnalysisDTO) Completes() bool {
	return d.OilID != nil && d.OilQuantity != nil
}

type UpdateAnalysisDTO struct {
	AnalysisDate *string          `json:"analysis_date"`
	Acidity      *decimal.Decimal `json:"acidity"`
	Humidity     *decimal.Decimal `json:"humidity"`
	Yield        *decimal.Decimal `json:"yield"`
	OilID        *int64           `json:"oil_id"`
	OilQuantity  *decimal.Decimal `json:"oil_quantity"`
}

func (d UpdateAnalysisDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.AnalysisDate != nil {
		v.Field("analysis_date", *d.AnalysisDate).Required().Custom(validDate)
	}
	if d.Acidity != nil {
		v.Field("acidity", *d.Acidity).RangeDecimal(percentMin, percentMax)
	}
	if d.Humidity != nil {
		v.Field("humidity", *d.Humidity).RangeDecimal(percentMin, percentMax)
	}
	if d.Yield != nil {
		v.Field("yield", *d.Yield).RangeDecimal(percentMin, percentMax)
	}
	if d.OilQuantity != nil {
		v.Field("oil_quantity", *d.OilQuantity).MinDecimal(decimal.Zero)
	}
	v.Field("oil_id", d.OilID).Custom(func(interface{}) string {
		if (d.OilID == nil) != (d.OilQuantity == nil) {
			return "los campos oil_id y oil_quantity deben indicarse juntos"
		}
		return ""
	})
	return v.Validate()
}

func (d UpdateAnalysisDTO) Completes() bool {
	return d.OilID != nil && d.OilQuantity != nil
}

func validDate(value interface{}) string {
	s, ok := value.(string)
	if !ok || s == "" {
		return ""
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "el campo analysis_date debe tener el formato AAAA-MM-DD"
	}
	return ""
}
