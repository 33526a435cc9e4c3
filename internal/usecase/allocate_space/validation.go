package allocate_space

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RequiredCapacity < domain.MinCapacity {
		return fmt.Errorf("%w: requiredCapacity must be at least %d", ErrInvalidInput, domain.MinCapacity)
	}

	if req.MaxPricePerHour != nil && *req.MaxPricePerHour <= 0 {
		return fmt.Errorf("%w: maxPricePerHour must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	if len(req.UserName) > domain.MaxNameLength {
		return fmt.Errorf("%w: userName is too long", ErrInvalidInput)
	}

	if err := validateEmail(req.UserEmail); err != nil {
		return err
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

// validateEmail проверяет минимальную корректность email
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: userEmail is malformed", ErrInvalidInput)
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
