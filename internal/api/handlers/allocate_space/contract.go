package allocate_space

import (
	"context"

	allocateSpace "github.com/m04kA/SMC-ReservesService/internal/usecase/allocate_space"
)

type AllocateSpaceUseCase interface {
	Execute(ctx context.Context, req *allocateSpace.Request) (*allocateSpace.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
