package get_free_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// occupiedSlots проецирует активные бронирования в отсортированные по началу
// интервалы занятости
func occupiedSlots(reservations []*domain.Reservation) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		slots = append(slots, r.Slot())
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}

// mergeSlots сливает отсортированные интервалы занятости.
// Граничащие интервалы здесь сливаются (start <= конец текущего) —
// намеренно мягче предиката конфликта, который использует строгое <:
// для поиска свободных окон стык двух бронирований не является дырой
func mergeSlots(slots []domain.TimeSlot) []domain.TimeSlot {
	if len(slots) == 0 {
		return nil
	}

	merged := make([]domain.TimeSlot, 0, len(slots))
	current := slots[0]

	for _, slot := range slots[1:] {
		if !slot.Start.After(current.End) {
			// Интервал продолжает текущий, расширяем правую границу
			if slot.End.After(current.End) {
				current.End = slot.End
			}
			continue
		}
		merged = append(merged, current)
		current = slot
	}

	return append(merged, current)
}

// freeGaps обходит слитые интервалы занятости и выдает дыры между ними
// в пределах [rangeStart, rangeEnd)
func freeGaps(merged []domain.TimeSlot, rangeStart, rangeEnd time.Time) []Slot {
	gaps := make([]Slot, 0, len(merged)+1)
	cursor := rangeStart

	for _, occupied := range merged {
		if cursor.Before(occupied.Start) {
			gaps = append(gaps, Slot{StartTime: cursor, EndTime: occupied.Start})
		}
		if occupied.End.After(cursor) {
			cursor = occupied.End
		}
	}

	if cursor.Before(rangeEnd) {
		gaps = append(gaps, Slot{StartTime: cursor, EndTime: rangeEnd})
	}

	return gaps
}
