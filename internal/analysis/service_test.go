package analysis_test

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
	"github.com/oleocontrol/oleocontrol/internal/analysis"
	analysisDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/analysis"
	entryDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/entry"
	"github.com/oleocontrol/oleocontrol/internal/core/events"
)

func TestAnalysis(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Analysis Suite")
}

type mockAnalysisRepository struct {
	analyses    map[int64]*analysisDatamodel.Analysis
	entries     map[int64]*entryDatamodel.Entry
	memberEmail string
	emailError  error
	// complete flags passed to Create/Update, in call order
	completions []bool
	nextID      int64
}

func newMockAnalysisRepository() *mockAnalysisRepository {
	return &mockAnalysisRepository{
		analyses: make(map[int64]*analysisDatamodel.Analysis),
		entries: map[int64]*entryDatamodel.Entry{
			1: {ID: 1, MemberID: 1, OliveQuantity: decimal.NewFromInt(200), AnalysisStatus: entryDatamodel.AnalysisStatusPending},
		},
		memberEmail: "socio@example.com",
		nextID:      1,
	}
}

func (m *mockAnalysisRepository) GetAll(limit, offset int) ([]*analysisDatamodel.Analysis, error) {
	all := make([]*analysisDatamodel.Analysis, 0, len(m.analyses))
	for _, a := range m.analyses {
		all = append(all, a)
	}
	return all, nil
}

func (m *mockAnalysisRepository) GetAllByEmployee(employeeID int64, limit, offset int) ([]*analysisDatamodel.Analysis, error) {
	return []*analysisDatamodel.Analysis{}, nil
}

func (m *mockAnalysisRepository) GetAllByMember(memberID int64, limit, offset int) ([]*analysisDatamodel.Analysis, error) {
	return []*analysisDatamodel.Analysis{}, nil
}

func (m *mockAnalysisRepository) GetByID(id int64) (*analysisDatamodel.Analysis, error) {
	a, ok := m.analyses[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return a, nil
}

func (m *mockAnalysisRepository) GetEntry(entryID int64) (*entryDatamodel.Entry, error) {
	e, ok := m.entries[entryID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return e, nil
}

func (m *mockAnalysisRepository) ExistsForEntry(entryID int64) (bool, error) {
	for _, a := range m.analyses {
		if a.EntryID == entryID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAnalysisRepository) Create(a *analysisDatamodel.Analysis, complete bool) error {
	a.ID = m.nextID
	m.nextID++
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	m.analyses[a.ID] = a
	m.completions = append(m.completions, complete)
	if complete {
		m.entries[a.EntryID].AnalysisStatus = entryDatamodel.AnalysisStatusComplete
		m.entries[a.EntryID].OilQuantity = a.OilQuantity
	}
	return nil
}

func (m *mockAnalysisRepository) Update(a *analysisDatamodel.Analysis, complete bool) error {
	m.analyses[a.ID] = a
	m.completions = append(m.completions, complete)
	if complete {
		m.entries[a.EntryID].AnalysisStatus = entryDatamodel.AnalysisStatusComplete
		m.entries[a.EntryID].OilQuantity = a.OilQuantity
	}
	return nil
}

func (m *mockAnalysisRepository) Delete(id int64) error {
	delete(m.analyses, id)
	return nil
}

func (m *mockAnalysisRepository) MemberEmailForEntry(entryID int64) (string, error) {
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

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var _ = Describe("AnalysisService", func() {
	var (
		repo    *mockAnalysisRepository
		bus     *mockBus
		service *analysis.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		repo = newMockAnalysisRepository()
		bus = &mockBus{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = analysis.NewService(repo, bus, logger)
		ctx = context.Background()
	})

	baseDTO := func() analysis.CreateAnalysisDTO {
		return analysis.CreateAnalysisDTO{
			AnalysisDate: "2026-01-16",
			Acidity:      pct("0.8"),
			Humidity:     pct("12.5"),
			Yield:        pct("21.3"),
			EntryID:      1,
		}
	}

	Describe("Create", func() {
		It("records a measurement-only analysis without completing the entry", func() {
			resp, err := service.Create(ctx, baseDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.OilID).To(BeNil())
			Expect(repo.completions).To(Equal([]bool{false}))
			Expect(repo.entries[1].AnalysisStatus).To(Equal(entryDatamodel.AnalysisStatusPending))
			Expect(bus.published).To(BeEmpty())
		})

		It("completes the entry when oil data is included", func() {
			oilID := int64(3)
			oilQty := pct("42.600")
			dto := baseDTO()
			dto.OilID = &oilID
			dto.OilQuantity = &oilQty

			resp, err := service.Create(ctx, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.OilID).To(Equal(&oilID))
			Expect(repo.completions).To(Equal([]bool{true}))
			Expect(repo.entries[1].AnalysisStatus).To(Equal(entryDatamodel.AnalysisStatusComplete))
			Expect(repo.entries[1].OilQuantity.String()).To(Equal("42.6"))

			Expect(bus.published).To(HaveLen(1))
			Expect(bus.published[0].EventType()).To(Equal(events.EventAnalysisCompleted))
			payload := bus.published[0].Payload().(map[string]interface{})
			Expect(payload["email"]).To(Equal("socio@example.com"))
			Expect(payload["acidity"]).To(Equal("0.8"))
		})

		It("rejects percentages outside 0..100", func() {
			dto := baseDTO()
			dto.Acidity = pct("-0.01")
			_, err := service.Create(ctx, dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("acidity"))

			dto = baseDTO()
			dto.Humidity = pct("100.01")
			_, err = service.Create(ctx, dto)
			appErr, ok = internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("humidity"))
		})

		It("rejects oil data arriving half-specified", func() {
			oilID := int64(3)
			dto := baseDTO()
			dto.OilID = &oilID

			_, err := service.Create(ctx, dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("oil_id"))
		})

		It("rejects a second analysis for the same entry", func() {
			_, err := service.Create(ctx, baseDTO())
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(ctx, baseDTO())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("entry_id"))
			Expect(appErr.Fields["entry_id"]).To(ContainSubstring("ya tiene un análisis"))
		})

		It("rejects analyses for unknown entries", func() {
			dto := baseDTO()
			dto.EntryID = 99
			_, err := service.Create(ctx, dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("entry_id"))
		})
	})

	Describe("Update", func() {
		var created *analysis.Response

		BeforeEach(func() {
			var err error
			created, err = service.Create(ctx, baseDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("amends measurements without completing", func() {
			acidity := pct("1.1")
			resp, err := service.Update(ctx, created.ID, analysis.UpdateAnalysisDTO{Acidity: &acidity})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Acidity.String()).To(Equal("1.1"))
			Expect(repo.completions).To(Equal([]bool{false, false}))
		})

		It("completes a pending analysis and publishes the event", func() {
			oilID := int64(3)
			oilQty := pct("40")
			_, err := service.Update(ctx, created.ID, analysis.UpdateAnalysisDTO{
				OilID:       &oilID,
				OilQuantity: &oilQty,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.completions).To(Equal([]bool{false, true}))
			Expect(repo.entries[1].AnalysisStatus).To(Equal(entryDatamodel.AnalysisStatusComplete))
			Expect(bus.published).To(HaveLen(1))
		})

		It("rejects re-completing an already completed analysis", func() {
			oilID := int64(3)
			oilQty := pct("40")
			_, err := service.Update(ctx, created.ID, analysis.UpdateAnalysisDTO{
				OilID:       &oilID,
				OilQuantity: &oilQty,
			})
			Expect(err).NotTo(HaveOccurred())

			otherOil := int64(4)
			_, err = service.Update(ctx, created.ID, analysis.UpdateAnalysisDTO{
				OilID:       &otherOil,
				OilQuantity: &oilQty,
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Fields).To(HaveKey("oil_id"))
			Expect(appErr.Fields["oil_id"]).To(ContainSubstring("ya está completado"))
		})

		It("returns not found for unknown analyses", func() {
			acidity := pct("1.1")
			_, err := service.Update(ctx, 999, analysis.UpdateAnalysisDTO{Acidity: &acidity})
			Expect(err).To(Equal(internal.ErrAnalysisNotFound))
		})
	})
})
