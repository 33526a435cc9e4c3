package create_reservation

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("create_reservation: space not found")

	// ErrSpaceUnavailable возвращается, когда пространство закрыто для бронирования
	ErrSpaceUnavailable = errors.New("create_reservation: space is not available")

	// ErrTimeConflict возвращается, когда запрошенное окно пересекается с существующим бронированием
	ErrTimeConflict = errors.New("create_reservation: time slot conflicts with an existing reservation")

	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("create_reservation: end time must be after start time")

	// ErrStartInPast возвращается, когда начало окна в прошлом
	ErrStartInPast = errors.New("create_reservation: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
