package allocate_space

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// rankByTotalCost пересортировывает кандидатов по полной стоимости
// запрошенного окна. Сортировка стабильная: при равной стоимости
// сохраняется порядок из selectCandidates
func rankByTotalCost(candidates []*domain.Space, start, end time.Time) []*domain.Space {
	ranked := make([]*domain.Space, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return domain.TotalCost(ranked[i].PricePerHour, start, end) <
			domain.TotalCost(ranked[j].PricePerHour, start, end)
	})

	return ranked
}
