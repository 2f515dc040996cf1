package lookup_customer

import (
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/normalize"
)

// AddressResponse is one known service address on the wire.
type AddressResponse struct {
	ID     string `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// CustomerResponse is the HTTP response model. Contact details are
// echoed back only in normalized, partially masked form.
type CustomerResponse struct {
	ID            string            `json:"id"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	PhoneLast4    string            `json:"phoneLast4"`
	Addresses     []AddressResponse `json:"addresses"`
	CorrelationID string            `json:"correlationId"`
}

// FromCustomer converts a matched customer into the HTTP model.
func FromCustomer(customer *domain.Customer, corrID string) *CustomerResponse {
	addresses := make([]AddressResponse, 0, len(customer.Addresses))
	for _, a := range customer.Addresses {
		addresses = append(addresses, AddressResponse{
			ID:     a.ID,
			Street: a.Street,
			City:   a.City,
			State:  a.State,
			Zip:    a.Zip,
		})
	}

	last4 := ""
	if phone := normalize.Phone(customer.Phone); len(phone) == 10 {
		last4 = phone[6:]
	}

	return &CustomerResponse{
		ID:            customer.ID,
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		PhoneLast4:    last4,
		Addresses:     addresses,
		CorrelationID: corrID,
	}
}
