package get_free_slots

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("get_free_slots: space not found")

	// ErrInvalidTimeRange возвращается, когда конец диапазона не позже начала
	ErrInvalidTimeRange = errors.New("get_free_slots: range end must be after range start")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_slots: internal error")
)
