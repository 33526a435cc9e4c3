package get_occupancy

import (
	"context"

	occupancyScore "github.com/m04kA/SMC-ReservesService/internal/usecase/occupancy_score"
)

type OccupancyScoreUseCase interface {
	Execute(ctx context.Context, req *occupancyScore.Request) (*occupancyScore.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
