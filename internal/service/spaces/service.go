package spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ReservesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ReservesService/internal/service/spaces/models"
)

// Service сервис для работы с пространствами
type Service struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса пространств
func NewService(spaceRepo SpaceRepository, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Create создает новое пространство
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space name=%s, type=%s", req.Name, req.Type)

	if err := validateSpaceFields(req.Name, req.Type, req.Capacity, req.PricePerHour); err != nil {
		s.logger.Warn("Create: validation failed for space name=%s: %v", req.Name, err)
		return nil, err
	}

	created, err := s.spaceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for space name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: space id=%d created", created.ID)
	return models.FromDomainSpace(created), nil
}

// GetByID получает пространство по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	s.logger.Info("GetByID: fetching space id=%d", id)

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetByID: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetByID: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// List получает пространства с фильтрацией по типу, вместимости и цене
func (s *Service) List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error) {
	s.logger.Info("List: fetching spaces, type=%v, minCapacity=%v", req.Type, req.MinCapacity)

	filter := req.ToDomainFilter()
	if filter.Type != nil && !filter.Type.IsValid() {
		s.logger.Warn("List: invalid space type=%s", *req.Type)
		return nil, fmt.Errorf("%w: invalid space type", ErrInvalidInput)
	}

	spaces, err := s.spaceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d spaces", len(spaces))
	return models.FromDomainSpaceList(spaces), nil
}

// Update обновляет пространство целиком
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%d", id)

	if err := validateSpaceFields(req.Name, req.Type, req.Capacity, req.PricePerHour); err != nil {
		s.logger.Warn("Update: validation failed for space id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.spaceRepo.Update(ctx, id, req.ToDomain(id))
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Update: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: space id=%d updated", id)
	return models.FromDomainSpace(updated), nil
}

// Delete удаляет пространство
// Удаление запрещено, если у пространства есть активные (не отмененные) бронирования
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting space id=%d", id)

	activeCount, err := s.reservationRepo.CountActiveBySpace(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count active reservations for space id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if activeCount > 0 {
		s.logger.Warn("Delete: space id=%d has %d active reservations", id, activeCount)
		return fmt.Errorf("%w: %d active reservations", ErrSpaceHasActiveReservations, activeCount)
	}

	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Delete: space id=%d not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("Delete: repository error for space id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: space id=%d deleted", id)
	return nil
}

// validateSpaceFields проверяет обязательные поля пространства
func validateSpaceFields(name, spaceType string, capacity int, pricePerHour float64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if !domain.SpaceType(spaceType).IsValid() {
		return fmt.Errorf("%w: invalid space type", ErrInvalidInput)
	}
	if capacity < domain.MinCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinCapacity)
	}
	if pricePerHour <= 0 {
		return fmt.Errorf("%w: price per hour must be positive", ErrInvalidInput)
	}
	return nil
}
