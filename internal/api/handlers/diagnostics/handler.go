package diagnostics

import (
	"net/http"
	"strconv"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers"
)

type Handler struct {
	registry DiagnosticsRegistry
	logger   Logger
}

func NewHandler(registry DiagnosticsRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle GET /api/v1/diagnostics/tools
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	topN := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			topN = n
		}
	}

	snap := h.registry.Snapshot(topN)
	h.logger.Info("GET /diagnostics/tools - %d tools, %d calls", len(snap.Tools), snap.TotalCalls)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}
