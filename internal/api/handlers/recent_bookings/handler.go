package recent_bookings

import (
	"net/http"
	"strconv"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type Handler struct {
	history BookingHistory
	logger  Logger
}

func NewHandler(history BookingHistory, logger Logger) *Handler {
	return &Handler{
		history: history,
		logger:  logger,
	}
}

// Handle GET /api/v1/diagnostics/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := uint64(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 {
			handlers.RespondBadRequest(w, "limit must be a positive integer")
			return
		}
		if n > maxLimit {
			n = maxLimit
		}
		limit = n
	}

	entries, err := h.history.RecentEntries(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /diagnostics/bookings - Query failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /diagnostics/bookings - %d entries (limit=%d)", len(entries), limit)
	handlers.RespondJSON(w, http.StatusOK, FromEntries(entries))
}
