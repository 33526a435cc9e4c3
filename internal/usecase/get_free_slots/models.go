package get_free_slots

import "time"

// Request запрос свободных окон пространства в диапазоне [From, To)
type Request struct {
	SpaceID int64
	From    time.Time
	To      time.Time
}

// Slot свободное окно
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}

// Response ответ со свободными окнами, отсортированными по началу
type Response struct {
	SpaceID int64
	From    time.Time
	To      time.Time
	Slots   []Slot
}
