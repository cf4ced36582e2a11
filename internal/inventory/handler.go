package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/transport"
	"github.com/oleocontrol/oleocontrol/pkg/logger"
)

type ServiceAPI interface {
	ListInventories(memberID int64, limit, offset int) ([]InventoryResponse, error)
	ListOilSettlements(memberID int64, limit, offset int) ([]OilSettlementResponse, error)
	InventorySummary(memberID int64) ([]InventorySummaryItem, error)
	OilSettlementSummary(memberID int64) ([]SettlementSummaryItem, error)
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

func (h *Handler) ListInventories(w http.ResponseWriter, r *http.Request) {
	memberID, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrMemberNotFound)
		return
	}

	limit, offset := transport.ParsePagination(r)
	inventories, err := h.Service.ListInventories(memberID, limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, inventories)
}

func (h *Handler) ListOilSettlements(w http.ResponseWriter, r *http.Request) {
	memberID, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrMemberNotFound)
		return
	}

	limit, offset := transport.ParsePagination(r)
	settlements, err := h.Service.ListOilSettlements(memberID, limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, settlements)
}

func (h *Handler) InventorySummary(w http.ResponseWriter, r *http.Request) {
	memberID, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrMemberNotFound)
		return
	}

	summary, err := h.Service.InventorySummary(memberID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, summary)
}

func (h *Handler) OilSettlementSummary(w http.ResponseWriter, r *http.Request) {
	memberID, ok := transport.ParseIDParam(chi.URLParam(r, "id"))
	if !ok {
		h.HandleServiceError(w, internal.ErrMemberNotFound)
		return
	}

	summary, err := h.Service.OilSettlementSummary(memberID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, summary)
}
