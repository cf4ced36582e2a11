package analysis

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/auth"
	"github.com/oleocontrol/oleocontrol/internal/transport"
	"github.com/oleocontrol/oleocontrol/pkg/logger"
)

type ServiceAPI interface {
	List(limit, offset int) ([]Response, error)
	ListByEmployee(employeeID int64, limit, offset int) ([]Response, error)
	ListByMember(memberID int64, limit, offset int) ([]Response, error)
	Create(ctx context.Context, dto CreateAnalysisDTO) (*Response, error)
	Get(id int64) (*Response, error)
	Update(ctx context.Context, id int64, dto UpdateAnalysisDTO) (*Response, error)
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
	analyses, err := h.Service.List(limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, analyses)
}

func (h *Handler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrEmployeeNotFound)
		return
	}

	limit, offset := transport.ParsePagination(r)
	analyses, err := h.Service.ListByEmployee(employeeID, limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, analyses)
}

func (h *Handler) ListByMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrMemberNotFound)
		return
	}

	limit, offset := transport.ParsePagination(r)
	analyses, err := h.Service.ListByMember(memberID, limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, analyses)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateAnalysisDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	// the acting lab employee is recorded unless an explicit one is given
	if dto.EmployeeID == nil {
		if actor, ok := auth.ActorFromContext(r.Context()); ok {
			dto.EmployeeID = actor.EmployeeID
		}
	}

	resp, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, resp)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrAnalysisNotFound)
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
		h.HandleServiceError(w, internal.ErrAnalysisNotFound)
		return
	}

	var dto UpdateAnalysisDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	resp, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrAnalysisNotFound)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteNoContent(w)
}
