package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservesService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
// Создание и изменение интервалов идет через usecases (с проверкой конфликтов),
// здесь собраны операции чтения и смены статуса
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetByUserEmail получает историю бронирований пользователя
func (s *Service) GetByUserEmail(ctx context.Context, email string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByUserEmail: fetching reservations for email=%s", email)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByUserEmail(ctx, email)
	if err != nil {
		s.logger.Error("GetByUserEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByUserEmail - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByUserEmail: fetched %d reservations for email=%s", len(reservations), email)
	return models.FromDomainReservationList(reservations), nil
}

// List получает бронирования с фильтрацией по пространству, статусу и email
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, spaceId=%v, status=%v", req.SpaceID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Отмена идемпотентна: повторная отмена уже отмененного бронирования
// успешна и не меняет ничего
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	reservation.Status = domain.StatusCancelled

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return models.FromDomainReservation(reservation), nil
}

// UpdateStatus обновляет статус бронирования (административная операция)
// Единственный путь перевода бронирования в completed
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, status)

	newStatus, err := models.ToDomainStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete удаляет бронирование (административное физическое удаление,
// статус не проверяется)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}
