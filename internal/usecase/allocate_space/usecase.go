package allocate_space

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// UseCase use case автоматического подбора пространства.
// Двухэтапная схема: дешевый фильтр кандидатов по вместимости и цене,
// затем проверка занятости только по короткому списку — чтобы не платить
// за проверку пересечений по всему пулу пространств
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

// Execute выполняет use case подбора пространства
// Подбор и создание бронирования идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateSpace: capacity=%d, maxPrice=%v, start=%s, end=%s",
		req.RequiredCapacity, req.MaxPricePerHour,
		req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))

	uc.metrics.IncAllocationAttempt()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateSpace: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что начало окна не в прошлом
	now := uc.timeProvider.Now()
	if err := validateStartNotInPast(req.StartTime, now); err != nil {
		uc.logger.Warn("AllocateSpace: start time %s is in the past",
			req.StartTime.Format(domain.DateTimeFormat))
		return nil, err
	}

	var result *domain.Reservation

	// 3. Подбор и создание в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем пул открытых пространств
		spaces, err := uc.spaceRepo.List(txCtx, domain.SpaceFilter{AvailableOnly: true})
		if err != nil {
			uc.logger.Error("AllocateSpace: failed to list spaces: %v", err)
			return fmt.Errorf("%w: failed to list spaces: %v", ErrInternal, err)
		}

		// 3.2. Фильтруем и ранжируем кандидатов
		candidates := selectCandidates(spaces, req.RequiredCapacity, req.MaxPricePerHour)
		if len(candidates) == 0 {
			uc.metrics.IncAllocationFailure()
			uc.logger.Warn("AllocateSpace: no candidates match capacity=%d, maxPrice=%v",
				req.RequiredCapacity, req.MaxPricePerHour)
			return ErrNoSpaceAvailable
		}

		uc.logger.Info("AllocateSpace: %d candidates selected", len(candidates))

		// 3.3. Пересортировываем по полной стоимости окна и берем
		// первого свободного кандидата
		ranked := rankByTotalCost(candidates, req.StartTime, req.EndTime)

		var chosen *domain.Space
		for _, candidate := range ranked {
			overlapping, err := uc.reservationRepo.FindOverlapping(txCtx, candidate.ID, req.StartTime, req.EndTime)
			if err != nil {
				uc.logger.Error("AllocateSpace: failed to check space id=%d: %v", candidate.ID, err)
				return fmt.Errorf("%w: failed to find overlapping reservations: %v", ErrInternal, err)
			}
			if len(overlapping) == 0 {
				chosen = candidate
				break
			}
			uc.logger.Info("AllocateSpace: space id=%d is busy in the requested window", candidate.ID)
		}

		// 3.4. Все кандидаты заняты — подбор не удался целиком
		if chosen == nil {
			uc.metrics.IncAllocationFailure()
			uc.logger.Warn("AllocateSpace: all %d candidates conflict with the requested window", len(ranked))
			return ErrNoSpaceAvailable
		}

		// 3.5. Создаем бронирование в подобранном пространстве
		reservation := &domain.Reservation{
			SpaceID:    chosen.ID,
			SpaceName:  chosen.Name,
			UserName:   req.UserName,
			UserEmail:  req.UserEmail,
			UserPhone:  req.UserPhone,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Status:     domain.StatusConfirmed,
			TotalPrice: domain.TotalCost(chosen.PricePerHour, req.StartTime, req.EndTime),
			Notes:      req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("AllocateSpace: failed to create reservation in space id=%d: %v", chosen.ID, err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AllocateSpace: allocated space id=%d, reservation id=%d, totalPrice=%.2f",
		result.SpaceID, result.ID, result.TotalPrice)

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
