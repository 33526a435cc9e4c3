package update_reservation

import "time"

// Request запрос на изменение бронирования
// Меняется только окно и заметки; пространство и данные пользователя фиксированы
type Request struct {
	ReservationID int64
	StartTime     time.Time
	EndTime       time.Time
	Notes         *string
}

// Response ответ с обновленным бронированием
type Response struct {
	ID         int64
	SpaceID    int64
	SpaceName  string
	UserName   string
	UserEmail  string
	UserPhone  *string
	StartTime  time.Time
	EndTime    time.Time
	Status     string
	TotalPrice float64
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
