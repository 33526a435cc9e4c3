package occupancy_score

import "time"

// Request запрос оценки загруженности пространства
type Request struct {
	SpaceID int64
}

// Response ответ с оценкой загруженности
type Response struct {
	SpaceID     int64
	Score       float64
	WindowDays  int
	EvaluatedAt time.Time
}
