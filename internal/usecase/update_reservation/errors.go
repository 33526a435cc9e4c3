package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrReservationCancelled возвращается при попытке изменить отмененное бронирование
	ErrReservationCancelled = errors.New("update_reservation: reservation is cancelled")

	// ErrTimeConflict возвращается, когда новое окно пересекается с другим бронированием
	ErrTimeConflict = errors.New("update_reservation: time slot conflicts with an existing reservation")

	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("update_reservation: end time must be after start time")

	// ErrStartInPast возвращается, когда начало окна в прошлом
	ErrStartInPast = errors.New("update_reservation: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
