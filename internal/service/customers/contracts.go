package customers

import (
	"context"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
)

// CRMClient is the slice of the CRM API this service consumes.
type CRMClient interface {
	SearchCustomers(ctx context.Context, query string, pageSize int) ([]*domain.Customer, error)
	CreateCustomer(ctx context.Context, profile housecall.CustomerProfile, addresses []housecall.AddressInput) (*domain.Customer, error)
	CreateAddress(ctx context.Context, customerID string, address housecall.AddressInput) (*domain.Address, error)
}

// Logger is the printf-style logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
