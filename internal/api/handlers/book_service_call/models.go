package book_service_call

import (
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	bookServiceCall "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/book_service_call"
)

// BookServiceCallRequest is the HTTP request model.
type BookServiceCallRequest struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Phone        string   `json:"phone"`
	Email        *string  `json:"email,omitempty"`
	Street       string   `json:"street"`
	Street2      *string  `json:"street2,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Description  string   `json:"description"`
	LeadSource   string   `json:"leadSource,omitempty"`
	Preference   string   `json:"timePreference,omitempty"` // any | morning | afternoon | evening
	EarliestDate string   `json:"earliestDate,omitempty"`   // "2025-10-15"
	SearchDays   int      `json:"searchDays,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// ToBookingRequest converts the HTTP request into the domain model.
func (r *BookServiceCallRequest) ToBookingRequest() (*domain.BookingRequest, error) {
	var earliest time.Time
	if r.EarliestDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.EarliestDate)
		if err != nil {
			return nil, err
		}
		earliest = parsed
	}

	return &domain.BookingRequest{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		Email:        r.Email,
		Street:       r.Street,
		Street2:      r.Street2,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
		Description:  r.Description,
		LeadSource:   r.LeadSource,
		Preference:   domain.TimePreference(r.Preference),
		EarliestDate: earliest,
		SearchDays:   r.SearchDays,
		Tags:         r.Tags,
	}, nil
}

// BookingResponse is the HTTP model for a committed booking.
type BookingResponse struct {
	Status               string  `json:"status"` // "booked"
	JobID                string  `json:"jobId"`
	AppointmentID        *string `json:"appointmentId,omitempty"`
	CustomerID           string  `json:"customerId"`
	WindowStart          string  `json:"windowStart"`
	WindowEnd            string  `json:"windowEnd"`
	ArrivalWindowMinutes int     `json:"arrivalWindowMinutes"`
	MatchedPreference    bool    `json:"matchedPreference"`
	CorrelationID        string  `json:"correlationId"`
}

// OutOfAreaResponse is the HTTP model for an out-of-area lead.
type OutOfAreaResponse struct {
	Status        string `json:"status"` // "out_of_area"
	Zip           string `json:"zip"`
	CustomerID    string `json:"customerId,omitempty"`
	LeadRecorded  bool   `json:"leadRecorded"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
}

// FromUseCaseResponse converts the use case outcome into the HTTP model.
func FromUseCaseResponse(resp *bookServiceCall.Response) any {
	if resp.OutOfArea != nil {
		o := resp.OutOfArea
		return &OutOfAreaResponse{
			Status:        "out_of_area",
			Zip:           o.Zip,
			CustomerID:    o.CustomerID,
			LeadRecorded:  o.LeadRecorded,
			Message:       "We don't currently serve that area. Our office will reach out about options.",
			CorrelationID: o.CorrelationID,
		}
	}

	b := resp.Booking
	return &BookingResponse{
		Status:               "booked",
		JobID:                b.JobID,
		AppointmentID:        b.AppointmentID,
		CustomerID:           b.CustomerID,
		WindowStart:          b.Window.Start.Format(time.RFC3339),
		WindowEnd:            b.Window.End.Format(time.RFC3339),
		ArrivalWindowMinutes: b.ArrivalWindowMinutes,
		MatchedPreference:    b.MatchedPreference,
		CorrelationID:        b.CorrelationID,
	}
}
