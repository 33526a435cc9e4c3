package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// ValidStatuses список допустимых статусов бронирования
var ValidStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValid returns true if the status is one of the known reservation statuses
func (s ReservationStatus) IsValid() bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Reservation represents a time-bound booking of one space by one requester
type Reservation struct {
	ID      int64
	SpaceID int64

	// Denormalized for history: the name the space had at booking time
	SpaceName string

	UserName  string
	UserEmail string
	UserPhone *string

	StartTime time.Time // включительно
	EndTime   time.Time // исключительно, строго после StartTime

	Status     ReservationStatus
	TotalPrice float64 // фиксируется при создании/обновлении
	Notes      *string

	CreatedAt time.Time // устанавливается один раз, неизменяемо
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time interval.
// Only cancelled reservations release the interval.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Slot projects the reservation onto its time interval
func (r *Reservation) Slot() TimeSlot {
	return TimeSlot{Start: r.StartTime, End: r.EndTime}
}

// ReservationFilter фильтр для выборки бронирований
type ReservationFilter struct {
	SpaceID   *int64             // Фильтр по пространству (опционально)
	Status    *ReservationStatus // Фильтр по статусу (опционально)
	UserEmail *string            // Фильтр по email пользователя (опционально)
}
