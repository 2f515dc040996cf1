package book_service_call

import (
	"context"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	bookServiceCall "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/book_service_call"
)

type BookServiceCallUseCase interface {
	Execute(ctx context.Context, req *domain.BookingRequest) (*bookServiceCall.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
