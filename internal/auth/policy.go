package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oleocontrol/oleocontrol/internal"
)

// Predicate is one step of a route's authorization chain. A nil return means
// the step passes; an AppError terminates evaluation immediately.
type Predicate func(actor *Actor, r *http.Request) *internal.AppError

// SubjectID extracts the actor-side identifier a self-ownership check
// compares the route subject against.
type SubjectID func(actor *Actor) (int64, bool)

func SelfUser(actor *Actor) (int64, bool) {
	return actor.UserID, true
}

func SelfMember(actor *Actor) (int64, bool) {
	if actor.MemberID == nil {
		return 0, false
	}
	return *actor.MemberID, true
}

func SelfEmployee(actor *Actor) (int64, bool) {
	if actor.EmployeeID == nil {
		return 0, false
	}
	return *actor.EmployeeID, true
}

// Policy is an ordered, short-circuit chain of predicates composed per route
// at startup. An authenticated Administrator bypasses the whole chain; every
// other actor must pass each configured step in order.
type Policy struct {
	predicates []Predicate
	logger     *slog.Logger
}

func NewPolicy(logger *slog.Logger) *Policy {
	return &Policy{logger: logger}
}

// HasRoles passes when the actor holds at least one of the given roles.
func HasRoles(roles ...Role) Predicate {
	return func(actor *Actor, _ *http.Request) *internal.AppError {
		if actor.HasAnyRole(roles...) {
			return nil
		}
		return internal.ErrForbidden
	}
}

// HasDepartment passes when the actor is an employee whose department is in
// the allow-list.
func HasDepartment(departments ...string) Predicate {
	return func(actor *Actor, _ *http.Request) *internal.AppError {
		if actor.EmployeeID == nil {
			return internal.ErrForbidden
		}
		for _, d := range departments {
			if actor.Department == d {
				return nil
			}
		}
		return internal.ErrForbidden
	}
}

// IsSelf passes when the route parameter resolves to the actor's own
// identifier. Cross-subject access is denied even when the role matches.
func IsSelf(param string, subject SubjectID) Predicate {
	return func(actor *Actor, r *http.Request) *internal.AppError {
		idStr := chi.URLParam(r, param)
		if idStr == "" {
			return internal.ErrForbidden
		}
		routeID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return internal.ErrForbidden
		}
		ownID, ok := subject(actor)
		if !ok || ownID != routeID {
			return internal.ErrForbidden
		}
		return nil
	}
}

// AnyOf passes when at least one of the given predicates passes; the deny of
// the last one is reported otherwise.
func AnyOf(preds ...Predicate) Predicate {
	return func(actor *Actor, r *http.Request) *internal.AppError {
		var last *internal.AppError
		for _, pred := range preds {
			if last = pred(actor, r); last == nil {
				return nil
			}
		}
		if last == nil {
			last = internal.ErrForbidden
		}
		return last
	}
}

func (p *Policy) RequireRoles(roles ...Role) *Policy {
	return p.Require(HasRoles(roles...))
}

func (p *Policy) RequireDepartments(departments ...string) *Policy {
	return p.Require(HasDepartment(departments...))
}

func (p *Policy) RequireSelf(param string, subject SubjectID) *Policy {
	return p.Require(IsSelf(param, subject))
}

// Require appends a custom predicate.
func (p *Policy) Require(pred Predicate) *Policy {
	p.predicates = append(p.predicates, pred)
	return p
}

// Evaluate runs the chain for an actor. Exposed separately from Middleware
// so the decision logic is testable without HTTP plumbing.
func (p *Policy) Evaluate(actor *Actor, r *http.Request) *internal.AppError {
	if actor == nil {
		return internal.ErrUnauthenticated
	}
	if actor.IsAdministrator() {
		return nil
	}
	for _, pred := range p.predicates {
		if err := pred(actor, r); err != nil {
			return err
		}
	}
	return nil
}

func (p *Policy) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok || actor == nil {
				writeDeny(w, internal.ErrUnauthenticated)
				return
			}

			if err := p.Evaluate(actor, r); err != nil {
				if p.logger != nil {
					p.logger.Warn("access denied",
						"user_id", actor.UserID,
						"roles", actor.RoleNames(),
						"department", actor.Department,
						"method", r.Method,
						"path", r.URL.Path)
				}
				writeDeny(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeDeny(w http.ResponseWriter, appErr *internal.AppError) {
	status, body := appErr.ToHTTPResponse()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
