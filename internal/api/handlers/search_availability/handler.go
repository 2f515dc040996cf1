package search_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	searchAvailability "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/search_availability"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

const (
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgInvalidDays   = "days must be a number between 1 and 30"
	msgInvalidParams = "invalid search parameters"
)

type Handler struct {
	useCase SearchAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SearchAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &searchAvailability.Request{
		ServiceType: q.Get("serviceType"),
		Preference:  domain.TimePreference(q.Get("preference")),
	}

	if raw := q.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	if raw := q.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid days %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.ShowForDays = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, searchAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			serr, ok := structerr.As(err)
			if !ok {
				h.logger.Error("GET /availability - Unclassified failure: %v", err)
				handlers.RespondInternalError(w)
				return
			}
			h.logger.Warn("GET /availability - %s/%s: %v [corr=%s]", serr.Type, serr.Code, err, serr.CorrelationID)
			handlers.RespondStructured(w, serr)
		}
		return
	}

	h.logger.Info("GET /availability - %d windows [corr=%s]", len(result.Windows), result.CorrelationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
