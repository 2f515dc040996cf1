package request_callback

import "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/callbacks"

// CallbackRequest is the HTTP request model for both callback flavors.
type CallbackRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	JobID     *string `json:"jobId,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CallbackRequest) ToServiceRequest() *callbacks.Request {
	return &callbacks.Request{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		JobID:     r.JobID,
		Reason:    r.Reason,
	}
}

// CallbackResponse is the HTTP response model.
type CallbackResponse struct {
	Kind          string  `json:"kind"`
	CustomerID    string  `json:"customerId"`
	JobID         *string `json:"jobId,omitempty"`
	Instruction   string  `json:"instruction"`
	CorrelationID string  `json:"correlationId"`
}

// FromResult converts the service result into the HTTP model.
func FromResult(result *callbacks.Result) *CallbackResponse {
	return &CallbackResponse{
		Kind:          string(result.Kind),
		CustomerID:    result.CustomerID,
		JobID:         result.JobID,
		Instruction:   result.Instruction,
		CorrelationID: result.CorrelationID,
	}
}
