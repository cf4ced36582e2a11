package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	inventoryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/inventory"
)

const DateLayout = "2006-01-02"

// UnknownOilName labels groups whose oil reference no longer resolves.
const UnknownOilName = "Unknown"

type InventoryResponse struct {
	ID        int64           `json:"id"`
	Quantity  decimal.Decimal `json:"quantity"`
	MemberID  int64           `json:"member_id"`
	OilID     int64           `json:"oil_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func InventoryFromDataModel(m *inventoryDatamodel.OilInventory) InventoryResponse {
	return InventoryResponse{
		ID:        m.ID,
		Quantity:  m.Quantity,
		MemberID:  m.MemberID,
		OilID:     m.OilID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type OilSettlementResponse struct {
	ID             int64           `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	SettlementDate string          `json:"settlement_date"`
	MemberID       int64           `json:"member_id"`
	OilID          *int64          `json:"oil_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func OilSettlementFromDataModel(m *inventoryDatamodel.OilSettlement) OilSettlementResponse {
	return OilSettlementResponse{
		ID:             m.ID,
		Amount:         m.Amount,
		SettlementDate: m.SettlementDate.Format(DateLayout),
		MemberID:       m.MemberID,
		OilID:          m.OilID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type InventorySummaryItem struct {
	OilID         int64           `json:"oil_id"`
	OilName       string          `json:"oil_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

type SettlementSummaryItem struct {
	OilID       int64           `json:"oil_id"`
	OilName     string          `json:"oil_name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SummarizeInventories groups movements by oil and sums quantities. Groups
// appear in the order their oil is first seen in the input.
func SummarizeInventories(rows []*inventoryDatamodel.OilInventory) []InventorySummaryItem {
	summary := make([]InventorySummaryItem, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		if i, seen := index[row.OilID]; seen {
			summary[i].TotalQuantity = summary[i].TotalQuantity.Add(row.Quantity)
			continue
		}

		name := UnknownOilName
		if row.Oil != nil {
			name = row.Oil.Name
		}
		index[row.OilID] = len(summary)
		summary = append(summary, InventorySummaryItem{
			OilID:         row.OilID,
			OilName:       name,
			TotalQuantity: row.Quantity,
		})
	}

	return summary
}

// SummarizeOilSettlements groups finalized settlements by oil and sums
// amounts. Rows with no oil reference collapse into one "Unknown" group.
func SummarizeOilSettlements(rows []*inventoryDatamodel.OilSettlement) []SettlementSummaryItem {
	summary := make([]SettlementSummaryItem, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		var key int64
		if row.OilID != nil {
			key = *row.OilID
		}

		if i, seen := index[key]; seen {
			summary[i].TotalAmount = summary[i].TotalAmount.Add(row.Amount)
			continue
		}

		name := UnknownOilName
		if row.Oil != nil {
			name = row.Oil.Name
		}
		index[key] = len(summary)
		summary = append(summary, SettlementSummaryItem{
			OilID:       key,
			OilName:     name,
			TotalAmount: row.Amount,
		})
	}

	return summary
}
