package rest

import (
	"github.com/go-chi/chi/v5"

	"github.com/oleocontrol/oleocontrol/internal/analysis"
	"github.com/oleocontrol/oleocontrol/internal/auth"
	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	"github.com/oleocontrol/oleocontrol/internal/department"
	"github.com/oleocontrol/oleocontrol/internal/employee"
	"github.com/oleocontrol/oleocontrol/internal/entry"
	"github.com/oleocontrol/oleocontrol/internal/inventory"
	"github.com/oleocontrol/oleocontrol/internal/member"
	"github.com/oleocontrol/oleocontrol/internal/notification"
	"github.com/oleocontrol/oleocontrol/internal/oil"
	"github.com/oleocontrol/oleocontrol/internal/settlement"
	"github.com/oleocontrol/oleocontrol/internal/transport/middleware"
	"github.com/oleocontrol/oleocontrol/internal/transport/swagger"
	"github.com/oleocontrol/oleocontrol/internal/user"
	"github.com/oleocontrol/oleocontrol/pkg/logger"
)

// Handlers aggregates everything the route tree mounts.
type Handlers struct {
	Auth         *auth.Handler
	User         *user.Handler
	Member       *member.Handler
	Employee     *employee.Handler
	Department   *department.Handler
	Oil          *oil.Handler
	Entry        *entry.Handler
	Analysis     *analysis.Handler
	Settlement   *settlement.Handler
	Inventory    *inventory.Handler
	Notification *notification.Handler
	Health       *HealthHandler
}

// NewRouter builds the full route tree. Authorization is composed per route
// from policy chains; an authenticated Administrator passes every chain.
func NewRouter(h Handlers, allowedOrigins, openAPIFile string) *chi.Mux {
	log := logger.LoggerWrapper()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(log))
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.CORS(allowedOrigins))

	// authorization chains, built once at startup
	adminOnly := auth.NewPolicy(log).RequireRoles(auth.RoleAdministrator)
	authenticated := auth.NewPolicy(log)

	memberAdmin := auth.NewPolicy(log).RequireDepartments(employeeDatamodel.DepartmentMemberAdmin)
	memberAdminOrSelf := auth.NewPolicy(log).Require(auth.AnyOf(
		auth.HasDepartment(employeeDatamodel.DepartmentMemberAdmin),
		auth.IsSelf("id", auth.SelfMember),
	))

	hr := auth.NewPolicy(log).RequireDepartments(employeeDatamodel.DepartmentHR)
	hrOrSelf := auth.NewPolicy(log).Require(auth.AnyOf(
		auth.HasDepartment(employeeDatamodel.DepartmentHR),
		auth.IsSelf("id", auth.SelfEmployee),
	))

	entries := auth.NewPolicy(log).RequireDepartments(employeeDatamodel.DepartmentEntries)
	entriesOrSelf := auth.NewPolicy(log).Require(auth.AnyOf(
		auth.HasDepartment(employeeDatamodel.DepartmentEntries),
		auth.IsSelf("id", auth.SelfMember),
	))

	lab := auth.NewPolicy(log).RequireDepartments(employeeDatamodel.DepartmentLaboratory)
	labOrSelfEmployee := auth.NewPolicy(log).Require(auth.AnyOf(
		auth.HasDepartment(employeeDatamodel.DepartmentLaboratory),
		auth.IsSelf("id", auth.SelfEmployee),
	))
	labOrSelfMember := auth.NewPolicy(log).Require(auth.AnyOf(
		auth.HasDepartment(employeeDatamodel.DepartmentLaboratory),
		auth.IsSelf("id", auth.SelfMember),
	))

	accounting := auth.NewPolicy(log).RequireDepartments(employeeDatamodel.DepartmentAccounting)
	accountingOrMemberRole := auth.NewPolicy(log).Require(auth.AnyOf(
		auth.HasDepartment(employeeDatamodel.DepartmentAccounting),
		auth.HasRoles(auth.RoleMember),
	))
	accountingOrSelf := auth.NewPolicy(log).Require(auth.AnyOf(
		auth.HasDepartment(employeeDatamodel.DepartmentAccounting),
		auth.IsSelf("id", auth.SelfMember),
	))

	selfUser := auth.NewPolicy(log).RequireSelf("id", auth.SelfUser)

	r.Route("/api/v1", func(r chi.Router) {
		// public surface
		r.Get("/health", h.Health.Health)
		r.Post("/login", h.Auth.Login)
		r.Post("/refresh", h.Auth.RefreshToken)
		r.Post("/logout", h.Auth.Logout)
		r.Get("/oils", h.Oil.List)
		r.Get("/oils/{id}", h.Oil.Get)

		// everything below resolves the actor first
		r.Group(func(r chi.Router) {
			r.Use(h.Auth.AuthMiddleware)

			r.With(authenticated.Middleware()).Get("/users/me", h.User.GetCurrent)
			r.With(authenticated.Middleware()).Put("/users/me", h.User.UpdateCurrent)

			r.Route("/users", func(r chi.Router) {
				r.With(adminOnly.Middleware()).Get("/", h.User.List)
				r.With(adminOnly.Middleware()).Post("/", h.User.Create)
				r.With(adminOnly.Middleware()).Get("/{id}", h.User.Get)
				r.With(adminOnly.Middleware()).Put("/{id}", h.User.Update)
				r.With(adminOnly.Middleware()).Delete("/{id}", h.User.Delete)

				r.With(selfUser.Middleware()).Get("/{id}/sent-notifications", h.Notification.ListSent)
				r.With(selfUser.Middleware()).Get("/{id}/received-notifications", h.Notification.ListReceived)
			})

			r.Route("/members", func(r chi.Router) {
				r.With(memberAdmin.Middleware()).Get("/", h.Member.List)
				r.With(memberAdmin.Middleware()).Post("/", h.Member.Create)
				r.With(memberAdminOrSelf.Middleware()).Get("/{id}", h.Member.Get)
				r.With(memberAdmin.Middleware()).Put("/{id}", h.Member.Update)
				r.With(memberAdmin.Middleware()).Delete("/{id}", h.Member.Delete)

				r.With(entriesOrSelf.Middleware()).Get("/{id}/entries", h.Entry.ListByMember)
				r.With(labOrSelfMember.Middleware()).Get("/{id}/analyses", h.Analysis.ListByMember)
				r.With(accountingOrSelf.Middleware()).Get("/{id}/settlements", h.Settlement.ListByMember)
				r.With(accountingOrSelf.Middleware()).Get("/{id}/oil-inventories", h.Inventory.ListInventories)
				r.With(accountingOrSelf.Middleware()).Get("/{id}/oil-inventories/summary", h.Inventory.InventorySummary)
				r.With(accountingOrSelf.Middleware()).Get("/{id}/oil-settlements", h.Inventory.ListOilSettlements)
				r.With(accountingOrSelf.Middleware()).Get("/{id}/oil-settlements/summary", h.Inventory.OilSettlementSummary)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(hr.Middleware()).Get("/", h.Employee.List)
				r.With(hr.Middleware()).Post("/", h.Employee.Create)
				r.With(hrOrSelf.Middleware()).Get("/{id}", h.Employee.Get)
				r.With(hr.Middleware()).Put("/{id}", h.Employee.Update)
				r.With(hr.Middleware()).Delete("/{id}", h.Employee.Delete)

				r.With(labOrSelfEmployee.Middleware()).Get("/{id}/analyses", h.Analysis.ListByEmployee)
			})

			r.Route("/departments", func(r chi.Router) {
				r.With(adminOnly.Middleware()).Get("/", h.Department.List)
				r.With(adminOnly.Middleware()).Post("/", h.Department.Create)
				r.With(adminOnly.Middleware()).Get("/{id}", h.Department.Get)
				r.With(adminOnly.Middleware()).Put("/{id}", h.Department.Update)
				r.With(adminOnly.Middleware()).Delete("/{id}", h.Department.Delete)
			})

			r.Route("/oils", func(r chi.Router) {
				r.With(adminOnly.Middleware()).Post("/", h.Oil.Create)
				r.With(adminOnly.Middleware()).Put("/{id}", h.Oil.Update)
				r.With(adminOnly.Middleware()).Delete("/{id}", h.Oil.Delete)
			})

			r.Route("/entries", func(r chi.Router) {
				r.With(entries.Middleware()).Get("/", h.Entry.List)
				r.With(entries.Middleware()).Post("/", h.Entry.Create)
				r.With(entries.Middleware()).Get("/{id}", h.Entry.Get)
				r.With(entries.Middleware()).Put("/{id}", h.Entry.Update)
				r.With(entries.Middleware()).Delete("/{id}", h.Entry.Delete)
			})

			r.Route("/analyses", func(r chi.Router) {
				r.With(lab.Middleware()).Get("/", h.Analysis.List)
				r.With(lab.Middleware()).Post("/", h.Analysis.Create)
				r.With(lab.Middleware()).Get("/{id}", h.Analysis.Get)
				r.With(lab.Middleware()).Put("/{id}", h.Analysis.Update)
				r.With(lab.Middleware()).Delete("/{id}", h.Analysis.Delete)
			})

			r.Route("/settlements", func(r chi.Router) {
				r.With(accounting.Middleware()).Get("/", h.Settlement.List)
				r.With(accountingOrMemberRole.Middleware()).Post("/", h.Settlement.Create)
				r.With(accounting.Middleware()).Get("/{id}", h.Settlement.Get)
				r.With(accounting.Middleware()).Put("/{id}", h.Settlement.Update)
				r.With(accounting.Middleware()).Delete("/{id}", h.Settlement.Delete)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.With(adminOnly.Middleware()).Get("/", h.Notification.List)
				r.With(authenticated.Middleware()).Post("/", h.Notification.Create)
				r.With(adminOnly.Middleware()).Get("/{id}", h.Notification.Get)
				r.With(adminOnly.Middleware()).Delete("/{id}", h.Notification.Delete)
			})
		})
	})

	swagger.Register(r, openAPIFile)

	log.Info("router initialized")
	return r
}
