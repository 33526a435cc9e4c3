package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/reservation"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
)

// UseCase use case для изменения окна бронирования
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

// Execute выполняет use case изменения бронирования
// Новое окно проходит ту же проверку конфликтов, что и при создании,
// но собственное бронирование из списка пересечений исключается.
// Цена пересчитывается по текущему тарифу пространства
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, start=%s, end=%s",
		req.ReservationID,
		req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что новое начало окна не в прошлом
	now := uc.timeProvider.Now()
	if err := validateStartNotInPast(req.StartTime, now); err != nil {
		uc.logger.Warn("UpdateReservation: start time %s is in the past",
			req.StartTime.Format(domain.DateTimeFormat))
		return nil, err
	}

	var result *domain.Reservation

	// 3. Проверка конфликта и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3.2. Отмененные бронирования не изменяются
		if reservation.IsCancelled() {
			uc.logger.Warn("UpdateReservation: reservation id=%d is cancelled", req.ReservationID)
			return ErrReservationCancelled
		}

		// 3.3. Получаем пространство для пересчета цены
		space, err := uc.spaceRepo.GetByID(txCtx, reservation.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				uc.logger.Error("UpdateReservation: space id=%d not found for reservation id=%d",
					reservation.SpaceID, req.ReservationID)
				return fmt.Errorf("%w: space not found", ErrInternal)
			}
			uc.logger.Error("UpdateReservation: failed to get space id=%d: %v", reservation.SpaceID, err)
			return fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}

		// 3.4. Ищем пересечения с новым окном, исключая само бронирование
		overlapping, err := uc.reservationRepo.FindOverlapping(txCtx, reservation.SpaceID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to find overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to find overlapping reservations: %v", ErrInternal, err)
		}

		conflicting := filterOutReservation(overlapping, reservation.ID)
		if len(conflicting) > 0 {
			uc.metrics.IncTimeConflict()
			uc.logger.Warn("UpdateReservation: reservation id=%d has %d conflicting reservations",
				req.ReservationID, len(conflicting))
			return ErrTimeConflict
		}

		// 3.5. Обновляем окно, заметки и пересчитываем цену
		reservation.StartTime = req.StartTime
		reservation.EndTime = req.EndTime
		reservation.TotalPrice = domain.TotalCost(space.PricePerHour, req.StartTime, req.EndTime)
		if req.Notes != nil {
			reservation.Notes = req.Notes
		}

		updated, err := uc.reservationRepo.Update(txCtx, reservation.ID, reservation)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d, totalPrice=%.2f",
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
