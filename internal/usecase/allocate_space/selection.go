package allocate_space

import (
	"sort"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// bestFitLess сравнивает два пространства для ранжирования кандидатов:
// дешевле в час — лучше; при равной цене просторнее — лучше
func bestFitLess(a, b *domain.Space) bool {
	if a.PricePerHour != b.PricePerHour {
		return a.PricePerHour < b.PricePerHour
	}
	return a.Capacity > b.Capacity
}

// selectCandidates фильтрует и ранжирует пространства для автоподбора.
// Фильтр: открыто для бронирования, вместимость не меньше требуемой,
// цена в час не выше лимита (если лимит задан).
// Ранжирование стабильное через bestFitLess, результат обрезается
// до domain.MaxCandidateSpaces.
// Функция чистая: никаких проверок по времени и побочных эффектов
func selectCandidates(spaces []*domain.Space, requiredCapacity int, maxPricePerHour *float64) []*domain.Space {
	candidates := make([]*domain.Space, 0, len(spaces))

	for _, space := range spaces {
		if !space.CanBeBooked() {
			continue
		}
		if space.Capacity < requiredCapacity {
			continue
		}
		if maxPricePerHour != nil && space.PricePerHour > *maxPricePerHour {
			continue
		}
		candidates = append(candidates, space)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return bestFitLess(candidates[i], candidates[j])
	})

	if len(candidates) > domain.MaxCandidateSpaces {
		candidates = candidates[:domain.MaxCandidateSpaces]
	}

	return candidates
}
