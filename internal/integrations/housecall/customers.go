package housecall

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// SearchCustomers queries customers by free text (phone, email, name).
func (c *Client) SearchCustomers(ctx context.Context, query string, pageSize int) ([]*domain.Customer, error) {
	if pageSize <= 0 {
		pageSize = c.pageSize
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("page_size", fmt.Sprint(pageSize))

	var out customerListWire
	if err := c.do(ctx, http.MethodGet, "/customers", q, nil, &out); err != nil {
		return nil, err
	}

	customers := make([]*domain.Customer, 0, len(out.Customers))
	for _, w := range out.Customers {
		customers = append(customers, w.toDomain())
	}
	return customers, nil
}

// CreateCustomer creates a customer with its initial addresses.
func (c *Client) CreateCustomer(ctx context.Context, profile CustomerProfile, addresses []AddressInput) (*domain.Customer, error) {
	payload := struct {
		CustomerProfile
		Addresses []AddressInput `json:"addresses,omitempty"`
	}{CustomerProfile: profile, Addresses: addresses}

	var out customerWire
	if err := c.do(ctx, http.MethodPost, "/customers", nil, payload, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// CreateAddress attaches a new service address to an existing customer.
func (c *Client) CreateAddress(ctx context.Context, customerID string, address AddressInput) (*domain.Address, error) {
	var out addressWire
	path := fmt.Sprintf("/customers/%s/addresses", customerID)
	if err := c.do(ctx, http.MethodPost, path, nil, address, &out); err != nil {
		return nil, err
	}
	addr := domain.Address(out)
	return &addr, nil
}
