package request_callback

import (
	"context"
	"errors"
	"net/http"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/callbacks"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidParams      = "firstName, lastName and a valid phone are required"
	msgNoExactMatch       = "no customer matches that exact name and phone"
)

type Handler struct {
	service CallbackService
	logger  Logger
}

func NewHandler(service CallbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleReschedule POST /api/v1/callbacks/reschedule
func (h *Handler) HandleReschedule(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /callbacks/reschedule", h.service.RequestReschedule)
}

// HandleCancel POST /api/v1/callbacks/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /callbacks/cancel", h.service.RequestCancellation)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, op string,
	call func(context.Context, *callbacks.Request) (*callbacks.Result, error)) {
	var req CallbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := call(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, callbacks.ErrInvalidInput):
			h.logger.Warn("%s - Invalid params: %v", op, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, callbacks.ErrCustomerNotFound):
			h.logger.Info("%s - No match for %q %q", op, req.FirstName, req.LastName)
			handlers.RespondNotFound(w, msgNoExactMatch)

		default:
			serr, ok := structerr.As(err)
			if !ok {
				h.logger.Error("%s - Unclassified failure: %v", op, err)
				handlers.RespondInternalError(w)
				return
			}
			h.logger.Warn("%s - %s/%s: %v [corr=%s]", op, serr.Type, serr.Code, err, serr.CorrelationID)
			handlers.RespondStructured(w, serr)
		}
		return
	}

	h.logger.Info("%s - Logged for customer id=%s [corr=%s]", op, result.CustomerID, result.CorrelationID)
	handlers.RespondJSON(w, http.StatusAccepted, FromResult(result))
}
