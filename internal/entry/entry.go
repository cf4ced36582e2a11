package entry

import (
	"time"

	"github.com/shopspring/decimal"

	entryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/entry"
)

// DateLayout is the wire format for entry dates.
const DateLayout = "2006-01-02"

type Response struct {
	ID             int64            `json:"id"`
	EntryDate      string           `json:"entry_date"`
	OliveQuantity  decimal.Decimal  `json:"olive_quantity"`
	OilQuantity    *decimal.Decimal `json:"oil_quantity"`
	AnalysisStatus string           `json:"analysis_status"`
	MemberID       int64            `json:"member_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromDataModel(e *entryDatamodel.Entry) Response {
	return Response{
		ID:             e.ID,
		EntryDate:      e.EntryDate.Format(DateLayout),
		OliveQuantity:  e.OliveQuantity,
		OilQuantity:    e.OilQuantity,
		AnalysisStatus: e.AnalysisStatus,
		MemberID:       e.MemberID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
