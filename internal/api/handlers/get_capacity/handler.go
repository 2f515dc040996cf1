package get_capacity

import (
	"net/http"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	getCapacity "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/get_capacity"
)

const msgInvalidDate = "invalid date, expected YYYY-MM-DD"

type Handler struct {
	useCase GetCapacityUseCase
	logger  Logger
}

func NewHandler(useCase GetCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &getCapacity.Request{AreaHint: q.Get("zip")}
	if raw := q.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /capacity - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	snap := h.useCase.Execute(r.Context(), req)

	h.logger.Info("GET /capacity - state=%s score=%d [corr=%s]", snap.State, snap.Score, snap.CorrelationID)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snap))
}
