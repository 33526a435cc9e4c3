package get_occupancy

import (
	"github.com/m04kA/SMC-ReservesService/internal/domain"
	occupancyScore "github.com/m04kA/SMC-ReservesService/internal/usecase/occupancy_score"
)

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	SpaceID     int64   `json:"spaceId"`
	Score       float64 `json:"score"`
	WindowDays  int     `json:"windowDays"`
	EvaluatedAt string  `json:"evaluatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *occupancyScore.Response) *OccupancyResponse {
	return &OccupancyResponse{
		SpaceID:     resp.SpaceID,
		Score:       resp.Score,
		WindowDays:  resp.WindowDays,
		EvaluatedAt: resp.EvaluatedAt.Format(domain.DateTimeFormat),
	}
}
