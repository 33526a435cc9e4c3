package update_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return ErrInvalidTimeRange
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartNotInPast проверяет, что начало окна не в прошлом
func validateStartNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

// filterOutReservation убирает из списка бронирование с указанным ID
// Собственное окно бронирования не конфликтует само с собой
func filterOutReservation(reservations []*domain.Reservation, id int64) []*domain.Reservation {
	result := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ID != id {
			result = append(result, r)
		}
	}
	return result
}
