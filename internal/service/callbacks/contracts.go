package callbacks

import (
	"context"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// CustomerLookup is the strict returning-customer match.
type CustomerLookup interface {
	Lookup(ctx context.Context, firstName, lastName, phone string) (*domain.Customer, error)
}

// NoteWriter appends notes to CRM entities.
type NoteWriter interface {
	AddNote(ctx context.Context, entityID, content string) error
}

// Logger is the printf-style logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
