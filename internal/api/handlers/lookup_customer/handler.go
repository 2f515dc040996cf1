package lookup_customer

import (
	"errors"
	"net/http"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/api/handlers"
	customersService "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/customers"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/correlation"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

const (
	msgInvalidParams = "firstName, lastName and a valid phone are required"
	msgNoExactMatch  = "no customer matches that exact name and phone"
)

type Handler struct {
	customers CustomerLookup
	logger    Logger
}

func NewHandler(customers CustomerLookup, logger Logger) *Handler {
	return &Handler{
		customers: customers,
		logger:    logger,
	}
}

// Handle GET /api/v1/customers/lookup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	firstName := q.Get("firstName")
	lastName := q.Get("lastName")
	phone := q.Get("phone")

	customer, err := h.customers.Lookup(r.Context(), firstName, lastName, phone)
	if err != nil {
		switch {
		case errors.Is(err, customersService.ErrInvalidInput):
			h.logger.Warn("GET /customers/lookup - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, customersService.ErrNotFound):
			h.logger.Info("GET /customers/lookup - No match for %q %q", firstName, lastName)
			handlers.RespondNotFound(w, msgNoExactMatch)

		default:
			serr, ok := structerr.As(err)
			if !ok {
				h.logger.Error("GET /customers/lookup - Unclassified failure: %v", err)
				handlers.RespondInternalError(w)
				return
			}
			h.logger.Warn("GET /customers/lookup - %s/%s: %v [corr=%s]", serr.Type, serr.Code, err, serr.CorrelationID)
			handlers.RespondStructured(w, serr)
		}
		return
	}

	corrID := correlation.FromContext(r.Context())
	h.logger.Info("GET /customers/lookup - Matched customer id=%s [corr=%s]", customer.ID, corrID)
	handlers.RespondJSON(w, http.StatusOK, FromCustomer(customer, corrID))
}
