package book_service_call

import (
	"net/http"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid earliest date, expected YYYY-MM-DD"
)

type Handler struct {
	useCase BookServiceCallUseCase
	logger  Logger
}

func NewHandler(useCase BookServiceCallUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookServiceCallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToBookingRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		serr, ok := structerr.As(err)
		if !ok {
			h.logger.Error("POST /bookings - Unclassified failure: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /bookings - %s/%s: %v [corr=%s]", serr.Type, serr.Code, err, serr.CorrelationID)
		handlers.RespondStructured(w, serr)
		return
	}

	status := http.StatusCreated
	if result.OutOfArea != nil {
		status = http.StatusOK
		h.logger.Info("POST /bookings - Out of area: zip=%s lead=%t", result.OutOfArea.Zip, result.OutOfArea.LeadRecorded)
	} else {
		h.logger.Info("POST /bookings - Booked: job=%s customer=%s", result.Booking.JobID, result.Booking.CustomerID)
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
