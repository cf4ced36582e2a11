package rest

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oleocontrol/oleocontrol/internal"
	"github.com/oleocontrol/oleocontrol/internal/transport"
	"github.com/oleocontrol/oleocontrol/pkg/logger"
)

// HealthHandler answers liveness probes. The database is pinged through the
// raw sqlx handle so a wedged pool shows up here before it shows up in
// request latencies.
type HealthHandler struct {
	*transport.BaseHandler
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		db:          db,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := internal.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			h.Logger.Error("health check failed", "error", err)
			h.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "degraded",
				"database": "down",
			})
			return
		}
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "up",
	})
}
