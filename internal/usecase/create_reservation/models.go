package create_reservation

import "time"

// Request запрос на создание бронирования
type Request struct {
	SpaceID   int64
	UserName  string
	UserEmail string
	UserPhone *string
	StartTime time.Time
	EndTime   time.Time
	Notes     *string
}

// Response ответ с созданным бронированием
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
