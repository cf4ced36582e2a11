package settlement

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/auth"
	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	"github.com/oleocontrol/oleocontrol/internal/transport"
	"github.com/oleocontrol/oleocontrol/pkg/logger"
)

type ServiceAPI interface {
	List(limit, offset int) ([]Response, error)
	ListByMember(memberID int64, limit, offset int) ([]Response, error)
	Create(dto CreateSettlementDTO) (*Response, error)
	Get(id int64) (*Response, error)
	Update(ctx context.Context, id int64, dto UpdateSettlementDTO, employeeID *int64) (*Response, error)
	Delete(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     svc,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := transport.ParsePagination(r)
	settlements, err := h.Service.List(limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, settlements)
}

func (h *Handler) ListByMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrMemberNotFound)
		return
	}

	limit, offset := transport.ParsePagination(r)
	settlements, err := h.Service.ListByMember(memberID, limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, settlements)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateSettlementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	// a member requesting a payout settles against their own account; only
	// accounting staff and administrators settle on behalf of other members
	if actor, ok := auth.ActorFromContext(r.Context()); ok {
		clerk := actor.IsAdministrator() || actor.Department == employeeDatamodel.DepartmentAccounting
		if !clerk {
			if actor.MemberID == nil {
				h.HandleServiceError(w, internal.ErrForbidden)
				return
			}
			if dto.MemberID != 0 && dto.MemberID != *actor.MemberID {
				h.HandleServiceError(w, internal.ErrForbidden)
				return
			}
			dto.MemberID = *actor.MemberID
		}
	}

	resp, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, resp)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrSettlementNotFound)
		return
	}

	resp, err := h.Service.Get(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrSettlementNotFound)
		return
	}

	var dto UpdateSettlementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	var employeeID *int64
	if actor, ok := auth.ActorFromContext(r.Context()); ok {
		employeeID = actor.EmployeeID
	}

	resp, err := h.Service.Update(r.Context(), id, dto, employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrSettlementNotFound)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteNoContent(w)
}
