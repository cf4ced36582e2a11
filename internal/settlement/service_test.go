package settlement_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/oleocontrol/oleocontrol/internal"
	settlementDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/settlement"
	"github.com/oleocontrol/oleocontrol/internal/core/events"
	"github.com/oleocontrol/oleocontrol/internal/settlement"
)

func TestSettlement(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Settlement Suite")
}

type mockSettlementRepository struct {
	settlements map[int64]*settlementDatamodel.Settlement
	stock       decimal.Decimal
	accepted    []*settlementDatamodel.Settlement
	memberEmail string
	emailError  error
	nextID      int64
}

func newMockSettlementRepository() *mockSettlementRepository {
	return &mockSettlementRepository{
		settlements: make(map[int64]*settlementDatamodel.Settlement),
		stock:       decimal.NewFromInt(100),
		memberEmail: "socio@example.com",
		nextID:      1,
	}
}

func (m *mockSettlementRepository) GetAll(limit, offset int) ([]*settlementDatamodel.Settlement, error) {
	all := make([]*settlementDatamodel.Settlement, 0, len(m.settlements))
	for _, s := range m.settlements {
		all = append(all, s)
	}
	return all, nil
}

func (m *mockSettlementRepository) GetAllByMember(memberID int64, limit, offset int) ([]*settlementDatamodel.Settlement, error) {
	return []*settlementDatamodel.Settlement{}, nil
}

func (m *mockSettlementRepository) GetByID(id int64) (*settlementDatamodel.Settlement, error) {
	s, ok := m.settlements[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (m *mockSettlementRepository) Create(s *settlementDatamodel.Settlement) error {
	s.ID = m.nextID
	m.nextID++
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	m.settlements[s.ID] = s
	return nil
}

func (m *mockSettlementRepository) Update(s *settlementDatamodel.Settlement) error {
	m.settlements[s.ID] = s
	return nil
}

func (m *mockSettlementRepository) Accept(s *settlementDatamodel.Settlement) error {
	m.settlements[s.ID] = s
	m.accepted = append(m.accepted, s)
	m.stock = m.stock.Sub(s.Amount)
	return nil
}

func (m *mockSettlementRepository) Delete(id int64) error {
	delete(m.settlements, id)
	return nil
}

func (m *mockSettlementRepository) MemberExists(memberID int64) (bool, error) {
	return memberID == 1, nil
}

func (m *mockSettlementRepository) OilExists(oilID int64) (bool, error) {
	return oilID == 3, nil
}

func (m *mockSettlementRepository) MemberOilStock(memberID, oilID int64) (decimal.Decimal, error) {
	return m.stock, nil
}

func (m *mockSettlementRepository) MemberEmail(memberID int64) (string, error) {
	if m.emailError != nil {
		return "", m.emailError
	}
	return m.memberEmail, nil
}

type mockBus struct {
	published []events.Event
}

func (m *mockBus) Publish(ctx context.Context, event events.Event) error {
	m.published = append(m.published, event)
	return nil
}

var _ = Describe("SettlementService", func() {
	var (
		repo    *mockSettlementRepository
		bus     *mockBus
		service *settlement.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		repo = newMockSettlementRepository()
		bus = &mockBus{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = settlement.NewService(repo, bus, logger)
		ctx = context.Background()
	})

	createDTO := func() settlement.CreateSettlementDTO {
		return settlement.CreateSettlementDTO{
			SettlementDate: "2026-02-01",
			Amount:         decimal.NewFromInt(50),
			Price:          decimal.RequireFromString("4.25"),
			MemberID:       1,
			OilID:          3,
		}
	}

	Describe("Create", func() {
		It("creates the request as pending with no resolution data", func() {
			resp, err := service.Create(createDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.SettlementStatus).To(Equal(settlementDatamodel.StatusPending))
			Expect(resp.SettlementDateRes).To(BeNil())
			Expect(resp.EmployeeID).To(BeNil())
		})

		It("rejects unknown members", func() {
			dto := createDTO()
			dto.MemberID = 9
			_, err := service.Create(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("member_id"))
		})

		It("rejects unknown oils", func() {
			dto := createDTO()
			dto.OilID = 9
			_, err := service.Create(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("oil_id"))
		})

		It("rejects negative amounts", func() {
			dto := createDTO()
			dto.Amount = decimal.NewFromInt(-1)
			_, err := service.Create(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("amount"))
		})
	})

	Describe("Update", func() {
		var (
			created    *settlement.Response
			employeeID int64
		)

		BeforeEach(func() {
			var err error
			created, err = service.Create(createDTO())
			Expect(err).NotTo(HaveOccurred())
			employeeID = 5
		})

		status := func(s string) *string { return &s }

		It("amends the price without resolving", func() {
			price := decimal.RequireFromString("4.50")
			resp, err := service.Update(ctx, created.ID, settlement.UpdateSettlementDTO{Price: &price}, &employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.SettlementStatus).To(Equal(settlementDatamodel.StatusPending))
			Expect(resp.SettlementDateRes).To(BeNil())
			Expect(bus.published).To(BeEmpty())
		})

		It("accepts when stock covers the amount, stamping resolution data", func() {
			resp, err := service.Update(ctx, created.ID,
				settlement.UpdateSettlementDTO{SettlementStatus: status(settlementDatamodel.StatusAccepted)},
				&employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.SettlementStatus).To(Equal(settlementDatamodel.StatusAccepted))
			Expect(resp.SettlementDateRes).NotTo(BeNil())
			Expect(resp.EmployeeID).To(Equal(&employeeID))

			Expect(repo.accepted).To(HaveLen(1))
			Expect(repo.stock.String()).To(Equal("50"))

			Expect(bus.published).To(HaveLen(1))
			Expect(bus.published[0].EventType()).To(Equal(events.EventSettlementResolved))
			payload := bus.published[0].Payload().(map[string]interface{})
			Expect(payload["status"]).To(Equal(settlementDatamodel.StatusAccepted))
			Expect(payload["amount"]).To(Equal("50"))
		})

		It("refuses acceptance when stock is insufficient", func() {
			repo.stock = decimal.NewFromInt(10)
			_, err := service.Update(ctx, created.ID,
				settlement.UpdateSettlementDTO{SettlementStatus: status(settlementDatamodel.StatusAccepted)},
				&employeeID)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("amount"))
			Expect(appErr.Fields["amount"]).To(ContainSubstring("no tiene suficiente aceite"))
			Expect(repo.accepted).To(BeEmpty())
		})

		It("cancels without touching the inventory", func() {
			resp, err := service.Update(ctx, created.ID,
				settlement.UpdateSettlementDTO{SettlementStatus: status(settlementDatamodel.StatusCancelled)},
				&employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.SettlementStatus).To(Equal(settlementDatamodel.StatusCancelled))
			Expect(resp.SettlementDateRes).NotTo(BeNil())
			Expect(repo.accepted).To(BeEmpty())
			Expect(repo.stock.String()).To(Equal("100"))
			Expect(bus.published).To(HaveLen(1))
		})

		It("refuses to touch an already resolved settlement", func() {
			_, err := service.Update(ctx, created.ID,
				settlement.UpdateSettlementDTO{SettlementStatus: status(settlementDatamodel.StatusCancelled)},
				&employeeID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Update(ctx, created.ID,
				settlement.UpdateSettlementDTO{SettlementStatus: status(settlementDatamodel.StatusAccepted)},
				&employeeID)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("settlement_status"))
			Expect(appErr.Fields["settlement_status"]).To(ContainSubstring("ya está resuelta"))
		})

		It("rejects unknown status values", func() {
			_, err := service.Update(ctx, created.ID,
				settlement.UpdateSettlementDTO{SettlementStatus: status("Resolved")},
				&employeeID)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("settlement_status"))
		})

		It("still resolves when the email lookup fails", func() {
			repo.emailError = errors.New("user missing")
			resp, err := service.Update(ctx, created.ID,
				settlement.UpdateSettlementDTO{SettlementStatus: status(settlementDatamodel.StatusAccepted)},
				&employeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.SettlementStatus).To(Equal(settlementDatamodel.StatusAccepted))
			Expect(bus.published).To(BeEmpty())
		})

		It("returns not found for unknown settlements", func() {
			_, err := service.Update(ctx, 999, settlement.UpdateSettlementDTO{}, &employeeID)
			Expect(err).To(Equal(internal.ErrSettlementNotFound))
		})
	})
})
