package settlement_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oleocontrol/oleocontrol/internal/auth"
	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	"github.com/oleocontrol/oleocontrol/internal/settlement"
)

type mockSettlementService struct {
	created []settlement.CreateSettlementDTO
}

func (m *mockSettlementService) List(limit, offset int) ([]settlement.Response, error) {
	return nil, nil
}

func (m *mockSettlementService) ListByMember(memberID int64, limit, offset int) ([]settlement.Response, error) {
	return nil, nil
}

func (m *mockSettlementService) Create(dto settlement.CreateSettlementDTO) (*settlement.Response, error) {
	m.created = append(m.created, dto)
	return &settlement.Response{ID: 1, MemberID: dto.MemberID}, nil
}

func (m *mockSettlementService) Get(id int64) (*settlement.Response, error) {
	return &settlement.Response{ID: id}, nil
}

func (m *mockSettlementService) Update(ctx context.Context, id int64, dto settlement.UpdateSettlementDTO, employeeID *int64) (*settlement.Response, error) {
	return &settlement.Response{ID: id}, nil
}

func (m *mockSettlementService) Delete(id int64) error {
	return nil
}

var _ = Describe("SettlementHandler", func() {
	var (
		svc     *mockSettlementService
		handler *settlement.Handler
	)

	BeforeEach(func() {
		svc = &mockSettlementService{}
		handler = settlement.NewHandler(svc)
	})

	postAs := func(actor *auth.Actor, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/settlements", bytes.NewBufferString(body))
		req = req.WithContext(auth.ContextWithActor(req.Context(), actor))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)
		return rec
	}

	memberActor := func(memberID int64) *auth.Actor {
		return &auth.Actor{
			UserID:   10,
			Roles:    []auth.Role{auth.RoleMember},
			MemberID: &memberID,
		}
	}

	Describe("Create", func() {
		It("forces a member's settlement onto their own account", func() {
			rec := postAs(memberActor(1),
				`{"settlement_date":"2026-02-01","amount":"50","price":"4.25","oil_id":3}`)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(svc.created).To(HaveLen(1))
			Expect(svc.created[0].MemberID).To(Equal(int64(1)))
		})

		It("refuses a member naming another member's account", func() {
			rec := postAs(memberActor(1),
				`{"settlement_date":"2026-02-01","amount":"50","price":"4.25","member_id":2,"oil_id":3}`)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(svc.created).To(BeEmpty())
		})

		It("accepts a member naming their own account explicitly", func() {
			rec := postAs(memberActor(1),
				`{"settlement_date":"2026-02-01","amount":"50","price":"4.25","member_id":1,"oil_id":3}`)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(svc.created[0].MemberID).To(Equal(int64(1)))
		})

		It("refuses a member-role actor without a member attachment", func() {
			rec := postAs(&auth.Actor{UserID: 10, Roles: []auth.Role{auth.RoleMember}},
				`{"settlement_date":"2026-02-01","amount":"50","price":"4.25","member_id":2,"oil_id":3}`)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(svc.created).To(BeEmpty())
		})

		It("lets accounting staff settle on behalf of any member", func() {
			employeeID := int64(5)
			clerk := &auth.Actor{
				UserID:     11,
				Roles:      []auth.Role{auth.RoleEmployee},
				EmployeeID: &employeeID,
				Department: employeeDatamodel.DepartmentAccounting,
			}
			rec := postAs(clerk,
				`{"settlement_date":"2026-02-01","amount":"50","price":"4.25","member_id":2,"oil_id":3}`)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(svc.created[0].MemberID).To(Equal(int64(2)))
		})

		It("lets an administrator settle on behalf of any member", func() {
			admin := &auth.Actor{UserID: 1, Roles: []auth.Role{auth.RoleAdministrator}}
			rec := postAs(admin,
				`{"settlement_date":"2026-02-01","amount":"50","price":"4.25","member_id":2,"oil_id":3}`)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(svc.created[0].MemberID).To(Equal(int64(2)))
		})
	})
})
