package occupancy_score

import (
	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// occupancyScore считает загруженность пространства как отношение
// суммарных часов бронирований к фиксированной емкости окна
// (30 дней x 12 бронируемых часов в день = 360 часов).
// Часы каждого бронирования берутся целыми, дробная часть отбрасывается.
// Результат ограничен сверху 1.0: пересекающаяся история не должна
// давать кажущуюся загрузку выше 100%
func occupancyScore(reservations []*domain.Reservation) float64 {
	var totalHours int64
	for _, r := range reservations {
		totalHours += int64(r.EndTime.Sub(r.StartTime).Hours())
	}

	score := float64(totalHours) / float64(domain.OccupancyTotalHours)
	if score > 1.0 {
		return 1.0
	}
	return score
}
