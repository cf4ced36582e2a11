package oil

import (
	"time"

	"github.com/shopspring/decimal"

	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
)

type Response struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PhotoURL    string          `json:"photo_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func FromDataModel(o *oilDatamodel.Oil) Response {
	return Response{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
		PhotoURL:    o.PhotoURL,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
