package lookup_customer

import (
	"context"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

type CustomerLookup interface {
	Lookup(ctx context.Context, firstName, lastName, phone string) (*domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
