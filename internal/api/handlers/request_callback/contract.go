package request_callback

import (
	"context"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/callbacks"
)

type CallbackService interface {
	RequestReschedule(ctx context.Context, req *callbacks.Request) (*callbacks.Result, error)
	RequestCancellation(ctx context.Context, req *callbacks.Request) (*callbacks.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
