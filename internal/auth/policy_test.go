package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oleocontrol/oleocontrol/internal/auth"
	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

func requestWithParam(param, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func memberActor(userID, memberID int64) *auth.Actor {
	return &auth.Actor{
		UserID:   userID,
		Roles:    []auth.Role{auth.RoleMember},
		MemberID: &memberID,
	}
}

func employeeActor(userID, employeeID int64, department string) *auth.Actor {
	return &auth.Actor{
		UserID:     userID,
		Roles:      []auth.Role{auth.RoleEmployee},
		EmployeeID: &employeeID,
		Department: department,
	}
}

var _ = Describe("Policy", func() {
	var req *http.Request

	BeforeEach(func() {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
	})

	It("rejects a nil actor as unauthenticated", func() {
		policy := auth.NewPolicy(nil)
		err := policy.Evaluate(nil, req)
		Expect(err).NotTo(BeNil())
		Expect(err.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("passes any authenticated actor through an empty chain", func() {
		policy := auth.NewPolicy(nil)
		Expect(policy.Evaluate(memberActor(1, 10), req)).To(BeNil())
	})

	It("lets an administrator bypass every predicate", func() {
		policy := auth.NewPolicy(nil).
			RequireDepartments(employeeDatamodel.DepartmentLaboratory).
			RequireRoles(auth.RoleEmployee)
		admin := &auth.Actor{UserID: 1, Roles: []auth.Role{auth.RoleAdministrator}}
		Expect(policy.Evaluate(admin, req)).To(BeNil())
	})

	Describe("RequireRoles", func() {
		It("passes when the actor holds one of the roles", func() {
			policy := auth.NewPolicy(nil).RequireRoles(auth.RoleMember, auth.RoleEmployee)
			Expect(policy.Evaluate(memberActor(1, 10), req)).To(BeNil())
		})

		It("denies when no role matches", func() {
			policy := auth.NewPolicy(nil).RequireRoles(auth.RoleEmployee)
			err := policy.Evaluate(memberActor(1, 10), req)
			Expect(err).NotTo(BeNil())
			Expect(err.StatusCode).To(Equal(http.StatusForbidden))
		})
	})

	Describe("RequireDepartments", func() {
		It("passes for an employee of an allowed department", func() {
			policy := auth.NewPolicy(nil).RequireDepartments(employeeDatamodel.DepartmentAccounting)
			actor := employeeActor(1, 5, employeeDatamodel.DepartmentAccounting)
			Expect(policy.Evaluate(actor, req)).To(BeNil())
		})

		It("denies an employee of another department", func() {
			policy := auth.NewPolicy(nil).RequireDepartments(employeeDatamodel.DepartmentAccounting)
			actor := employeeActor(1, 5, employeeDatamodel.DepartmentHR)
			err := policy.Evaluate(actor, req)
			Expect(err).NotTo(BeNil())
			Expect(err.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("denies actors without an employee attachment", func() {
			policy := auth.NewPolicy(nil).RequireDepartments(employeeDatamodel.DepartmentAccounting)
			err := policy.Evaluate(memberActor(1, 10), req)
			Expect(err).NotTo(BeNil())
		})
	})

	Describe("RequireSelf", func() {
		It("passes when the route id is the actor's own member id", func() {
			policy := auth.NewPolicy(nil).RequireSelf("id", auth.SelfMember)
			Expect(policy.Evaluate(memberActor(1, 7), requestWithParam("id", "7"))).To(BeNil())
		})

		It("denies cross-member access even with the member role", func() {
			policy := auth.NewPolicy(nil).RequireSelf("id", auth.SelfMember)
			err := policy.Evaluate(memberActor(1, 7), requestWithParam("id", "8"))
			Expect(err).NotTo(BeNil())
			Expect(err.StatusCode).To(Equal(http.StatusForbidden))
		})

		It("denies actors without the compared attachment", func() {
			policy := auth.NewPolicy(nil).RequireSelf("id", auth.SelfMember)
			actor := &auth.Actor{UserID: 1, Roles: []auth.Role{auth.RoleGuest}}
			Expect(policy.Evaluate(actor, requestWithParam("id", "1"))).NotTo(BeNil())
		})

		It("denies non-numeric route parameters", func() {
			policy := auth.NewPolicy(nil).RequireSelf("id", auth.SelfUser)
			actor := &auth.Actor{UserID: 1}
			Expect(policy.Evaluate(actor, requestWithParam("id", "abc"))).NotTo(BeNil())
		})
	})

	Describe("AnyOf", func() {
		departmentOrSelf := func() *auth.Policy {
			return auth.NewPolicy(nil).Require(auth.AnyOf(
				auth.HasDepartment(employeeDatamodel.DepartmentAccounting),
				auth.IsSelf("id", auth.SelfMember),
			))
		}

		It("passes on the first matching predicate", func() {
			actor := employeeActor(1, 5, employeeDatamodel.DepartmentAccounting)
			Expect(departmentOrSelf().Evaluate(actor, requestWithParam("id", "99"))).To(BeNil())
		})

		It("passes on a later predicate when earlier ones deny", func() {
			Expect(departmentOrSelf().Evaluate(memberActor(1, 7), requestWithParam("id", "7"))).To(BeNil())
		})

		It("denies when every predicate denies", func() {
			err := departmentOrSelf().Evaluate(memberActor(1, 7), requestWithParam("id", "8"))
			Expect(err).NotTo(BeNil())
			Expect(err.StatusCode).To(Equal(http.StatusForbidden))
		})
	})

	Describe("Middleware", func() {
		It("responds 401 when no actor is in the context", func() {
			handler := auth.NewPolicy(nil).Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("responds 403 when the chain denies", func() {
			policy := auth.NewPolicy(nil).RequireRoles(auth.RoleEmployee)
			handler := policy.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(auth.ContextWithActor(req.Context(), memberActor(1, 10)))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("calls through when the chain passes", func() {
			policy := auth.NewPolicy(nil).RequireRoles(auth.RoleMember)
			handler := policy.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(auth.ContextWithActor(req.Context(), memberActor(1, 10)))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})
	})
})
