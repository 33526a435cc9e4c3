package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение бронирований с фильтрацией
type ListReservationsRequest struct {
	SpaceID   *int64  `json:"spaceId,omitempty"`
	Status    *string `json:"status,omitempty"`
	UserEmail *string `json:"userEmail,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		SpaceID:   r.SpaceID,
		UserEmail: r.UserEmail,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64   `json:"id"`
	SpaceID    int64   `json:"spaceId"`
	SpaceName  string  `json:"spaceName"`
	UserName   string  `json:"userName"`
	UserEmail  string  `json:"userEmail"`
	UserPhone  *string `json:"userPhone,omitempty"`
	StartTime  string  `json:"startTime"` // "2025-11-10T09:00:00"
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	Notes      *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:         r.ID,
		SpaceID:    r.SpaceID,
		SpaceName:  r.SpaceName,
		UserName:   r.UserName,
		UserEmail:  r.UserEmail,
		UserPhone:  r.UserPhone,
		StartTime:  r.StartTime.Format(domain.DateTimeFormat),
		EndTime:    r.EndTime.Format(domain.DateTimeFormat),
		Status:     string(r.Status),
		TotalPrice: r.TotalPrice,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if converted := FromDomainReservation(reservation); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
