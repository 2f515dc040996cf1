// Package handlers carries the helpers shared by all HTTP handlers:
// JSON decoding, response writing and the structured-error mapping.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

// ErrorResponse is the wire shape of every error this API returns.
type ErrorResponse struct {
	Error         string `json:"error"`
	Type          string `json:"type,omitempty"`
	Code          string `json:"code,omitempty"`
	Retryable     bool   `json:"retryable,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON writes payload as JSON with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError writes a plain error message with the given status.
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// RespondBadRequest writes a 400 with the given message.
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

// RespondNotFound writes a 404 with the given message.
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

// RespondInternalError writes a generic 500.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// RespondStructured maps a structured error onto an HTTP status and
// writes its user-safe representation. Raw upstream messages never
// reach the client; only the fixed user message does.
func RespondStructured(w http.ResponseWriter, serr *structerr.Error) {
	RespondJSON(w, statusFor(serr.Type), ErrorResponse{
		Error:         serr.UserMessage,
		Type:          string(serr.Type),
		Code:          serr.Code,
		Retryable:     serr.Retryable(),
		CorrelationID: serr.CorrelationID,
	})
}

func statusFor(t structerr.Type) int {
	switch t {
	case structerr.TypeValidation:
		return http.StatusBadRequest
	case structerr.TypeNotFound:
		return http.StatusNotFound
	case structerr.TypeBusinessLogic:
		return http.StatusConflict
	case structerr.TypeConfiguration, structerr.TypeAPIError:
		return http.StatusBadGateway
	case structerr.TypeNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
