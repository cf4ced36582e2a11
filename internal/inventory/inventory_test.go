package inventory_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	inventoryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/inventory"
	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
	"github.com/oleocontrol/oleocontrol/internal/inventory"
)

func TestInventory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inventory Suite")
}

func oil(id int64, name string) *oilDatamodel.Oil {
	return &oilDatamodel.Oil{ID: id, Name: name}
}

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var _ = Describe("SummarizeInventories", func() {
	It("groups by oil in first-seen order and sums quantities", func() {
		rows := []*inventoryDatamodel.OilInventory{
			{OilID: 1, Oil: oil(1, "Picual"), Quantity: qty("5")},
			{OilID: 2, Oil: oil(2, "Arbequina"), Quantity: qty("3")},
			{OilID: 1, Oil: oil(1, "Picual"), Quantity: qty("2")},
		}

		summary := inventory.SummarizeInventories(rows)
		Expect(summary).To(HaveLen(2))
		Expect(summary[0].OilID).To(Equal(int64(1)))
		Expect(summary[0].OilName).To(Equal("Picual"))
		Expect(summary[0].TotalQuantity.String()).To(Equal("7"))
		Expect(summary[1].OilID).To(Equal(int64(2)))
		Expect(summary[1].TotalQuantity.String()).To(Equal("3"))
	})

	It("nets debits against credits", func() {
		rows := []*inventoryDatamodel.OilInventory{
			{OilID: 1, Oil: oil(1, "Picual"), Quantity: qty("10.500")},
			{OilID: 1, Oil: oil(1, "Picual"), Quantity: qty("-4.250")},
		}

		summary := inventory.SummarizeInventories(rows)
		Expect(summary).To(HaveLen(1))
		Expect(summary[0].TotalQuantity.String()).To(Equal("6.25"))
	})

	It("labels unresolved oil references", func() {
		rows := []*inventoryDatamodel.OilInventory{
			{OilID: 9, Oil: nil, Quantity: qty("1")},
		}

		summary := inventory.SummarizeInventories(rows)
		Expect(summary).To(HaveLen(1))
		Expect(summary[0].OilName).To(Equal(inventory.UnknownOilName))
	})

	It("returns an empty slice for no movements", func() {
		summary := inventory.SummarizeInventories(nil)
		Expect(summary).NotTo(BeNil())
		Expect(summary).To(BeEmpty())
	})
})

var _ = Describe("SummarizeOilSettlements", func() {
	oilID := func(id int64) *int64 { return &id }

	It("groups by oil and sums amounts", func() {
		rows := []*inventoryDatamodel.OilSettlement{
			{OilID: oilID(1), Oil: oil(1, "Picual"), Amount: qty("100")},
			{OilID: oilID(1), Oil: oil(1, "Picual"), Amount: qty("50")},
			{OilID: oilID(2), Oil: oil(2, "Cornicabra"), Amount: qty("25")},
		}

		summary := inventory.SummarizeOilSettlements(rows)
		Expect(summary).To(HaveLen(2))
		Expect(summary[0].OilName).To(Equal("Picual"))
		Expect(summary[0].TotalAmount.String()).To(Equal("150"))
		Expect(summary[1].TotalAmount.String()).To(Equal("25"))
	})

	It("collapses rows without an oil reference into one Unknown group", func() {
		rows := []*inventoryDatamodel.OilSettlement{
			{OilID: nil, Amount: qty("10")},
			{OilID: nil, Amount: qty("5")},
			{OilID: oilID(3), Oil: oil(3, "Hojiblanca"), Amount: qty("1")},
		}

		summary := inventory.SummarizeOilSettlements(rows)
		Expect(summary).To(HaveLen(2))
		Expect(summary[0].OilID).To(Equal(int64(0)))
		Expect(summary[0].OilName).To(Equal(inventory.UnknownOilName))
		Expect(summary[0].TotalAmount.String()).To(Equal("15"))
	})

	It("returns an empty slice for no settlements", func() {
		Expect(inventory.SummarizeOilSettlements(nil)).To(BeEmpty())
	})
})
