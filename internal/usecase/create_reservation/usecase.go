package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
)

// UseCase use case для создания бронирования
type UseCase struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликта и запись выполняются в одной сериализуемой транзакции,
// иначе два параллельных запроса на пересекающиеся окна могут оба пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: space=%d, user=%s, start=%s, end=%s",
		req.SpaceID, req.UserEmail,
		req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что начало окна не в прошлом
	now := uc.timeProvider.Now()
	if err := validateStartNotInPast(req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: start time %s is in the past",
			req.StartTime.Format(domain.DateTimeFormat))
		return nil, err
	}

	var result *domain.Reservation

	// 3. Проверка конфликта и создание в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем пространство
		space, err := uc.spaceRepo.GetByID(txCtx, req.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				uc.logger.Warn("CreateReservation: space id=%d not found", req.SpaceID)
				return ErrSpaceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get space id=%d: %v", req.SpaceID, err)
			return fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}

		// 3.2. Пространство должно быть открыто для бронирования
		if !space.CanBeBooked() {
			uc.logger.Warn("CreateReservation: space id=%d is not available", req.SpaceID)
			return ErrSpaceUnavailable
		}

		// 3.3. Ищем пересекающиеся бронирования (FOR UPDATE внутри транзакции)
		overlapping, err := uc.reservationRepo.FindOverlapping(txCtx, req.SpaceID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to find overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to find overlapping reservations: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.metrics.IncTimeConflict()
			uc.logger.Warn("CreateReservation: space id=%d has %d conflicting reservations",
				req.SpaceID, len(overlapping))
			return ErrTimeConflict
		}

		// 3.4. Создаем бронирование с денормализацией имени пространства
		reservation := &domain.Reservation{
			SpaceID:    req.SpaceID,
			SpaceName:  space.Name,
			UserName:   req.UserName,
			UserEmail:  req.UserEmail,
			UserPhone:  req.UserPhone,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Status:     domain.StatusConfirmed,
			TotalPrice: domain.TotalCost(space.PricePerHour, req.StartTime, req.EndTime),
			Notes:      req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, totalPrice=%.2f",
		result.ID, result.TotalPrice)

	return &Response{
		ID:         result.ID,
		SpaceID:    result.SpaceID,
		SpaceName:  result.SpaceName,
		UserName:   result.UserName,
		UserEmail:  result.UserEmail,
		UserPhone:  result.UserPhone,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Status:     string(result.Status),
		TotalPrice: result.TotalPrice,
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
