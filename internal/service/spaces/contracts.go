package spaces

import (
	"context"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error)
	Update(ctx context.Context, id int64, space *domain.Space) (*domain.Space, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований
// (для проверки активных бронирований перед удалением пространства)
type ReservationRepository interface {
	CountActiveBySpace(ctx context.Context, spaceID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
