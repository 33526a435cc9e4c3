package occupancy_score

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
)

// UseCase use case оценки загруженности пространства за скользящие 30 дней.
// Окно отсчитывается от момента вычисления, поэтому повторный вызов позже
// даст другой результат на тех же исторических данных
type UseCase struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(spaceRepo SpaceRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case оценки загруженности
// Бронирования попадают в окно по времени СОЗДАНИЯ, а не по времени
// проведения, и статус не учитывается. Это сознательно сохраненное
// поведение: метрика отражает спрос на пространство за период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OccupancyScore: space=%d", req.SpaceID)

	if req.SpaceID <= 0 {
		return nil, fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	// 1. Проверяем существование пространства
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("OccupancyScore: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("OccupancyScore: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 2. Загружаем бронирования, созданные в скользящем окне
	now := uc.timeProvider.Now()
	since := now.AddDate(0, 0, -domain.OccupancyWindowDays)

	reservations, err := uc.reservationRepo.FindCreatedSince(ctx, req.SpaceID, since)
	if err != nil {
		uc.logger.Error("OccupancyScore: failed to find reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to find reservations: %v", ErrInternal, err)
	}

	// 3. Считаем оценку
	score := occupancyScore(reservations)

	uc.logger.Info("OccupancyScore: space id=%d, %d reservations in window, score=%.4f",
		req.SpaceID, len(reservations), score)

	return &Response{
		SpaceID:     req.SpaceID,
		Score:       score,
		WindowDays:  domain.OccupancyWindowDays,
		EvaluatedAt: now,
	}, nil
}
