package get_free_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
)

// UseCase use case поиска свободных окон пространства
type UseCase struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(spaceRepo SpaceRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case поиска свободных окон
// Три шага: проекция активных бронирований в интервалы занятости,
// слияние пересекающихся и граничащих интервалов, обход дыр по курсору.
// Если бронирований нет, весь диапазон возвращается одним окном
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: space=%d, from=%s, to=%s",
		req.SpaceID, req.From.Format(domain.DateTimeFormat), req.To.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование пространства
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetFreeSlots: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 3. Загружаем активные бронирования, пересекающие диапазон
	reservations, err := uc.reservationRepo.FindOverlapping(ctx, req.SpaceID, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to find overlapping reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to find overlapping reservations: %v", ErrInternal, err)
	}

	// 4. Слияние занятости и обход дыр
	occupied := occupiedSlots(reservations)
	merged := mergeSlots(occupied)
	slots := freeGaps(merged, req.From, req.To)

	uc.logger.Info("GetFreeSlots: space id=%d has %d free slots in range", req.SpaceID, len(slots))

	return &Response{
		SpaceID: req.SpaceID,
		From:    req.From,
		To:      req.To,
		Slots:   slots,
	}, nil
}
