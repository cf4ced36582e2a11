package oil

import (
	"github.com/shopspring/decimal"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
)

type CreateOilDTO struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PhotoURL    string          `json:"photo_url"`
}

func (d CreateOilDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(100)
	v.Field("price", d.Price).MinDecimal(decimal.Zero)
	return v.Validate()
}

type UpdateOilDTO struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	PhotoURL    *string          `json:"photo_url"`
}

func (d UpdateOilDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Field("name", *d.Name).Required().MaxLength(100)
	}
	if d.Price != nil {
		v.Field("price", *d.Price).MinDecimal(decimal.Zero)
	}
	return v.Validate()
}
