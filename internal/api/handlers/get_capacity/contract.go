package get_capacity

import (
	"context"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	getCapacity "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/usecase/get_capacity"
)

type GetCapacityUseCase interface {
	Execute(ctx context.Context, req *getCapacity.Request) *domain.CapacitySnapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
