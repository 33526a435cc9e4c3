package allocate_space

import "errors"

var (
	// ErrNoSpaceAvailable возвращается, когда ни один подходящий кандидат
	// не свободен в запрошенном окне
	ErrNoSpaceAvailable = errors.New("allocate_space: no space available for the requested window")

	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("allocate_space: end time must be after start time")

	// ErrStartInPast возвращается, когда начало окна в прошлом
	ErrStartInPast = errors.New("allocate_space: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocate_space: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_space: internal error")
)
