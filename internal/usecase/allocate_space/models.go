package allocate_space

import "time"

// Request запрос на автоматический подбор пространства
type Request struct {
	RequiredCapacity int
	MaxPricePerHour  *float64
	StartTime        time.Time
	EndTime          time.Time
	UserName         string
	UserEmail        string
	UserPhone        *string
	Notes            *string
}

// Response ответ с созданным бронированием в подобранном пространстве
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
