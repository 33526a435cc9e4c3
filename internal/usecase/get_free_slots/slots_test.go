package get_free_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 10, hour, minute, 0, 0, time.UTC)
}

func slot(startHour, startMinute, endHour, endMinute int) domain.TimeSlot {
	return domain.TimeSlot{Start: at(startHour, startMinute), End: at(endHour, endMinute)}
}

func TestMergeSlots(t *testing.T) {
	t.Run("overlapping intervals merge", func(t *testing.T) {
		merged := mergeSlots([]domain.TimeSlot{
			slot(9, 0, 10, 0),
			slot(9, 30, 11, 0),
			slot(14, 0, 15, 0),
		})

		require.Len(t, merged, 2)
		assert.Equal(t, slot(9, 0, 11, 0), merged[0])
		assert.Equal(t, slot(14, 0, 15, 0), merged[1])
	})

	t.Run("touching intervals merge", func(t *testing.T) {
		merged := mergeSlots([]domain.TimeSlot{
			slot(9, 0, 10, 0),
			slot(10, 0, 11, 0),
		})

		require.Len(t, merged, 1)
		assert.Equal(t, slot(9, 0, 11, 0), merged[0])
	})

	t.Run("contained interval does not shrink the running one", func(t *testing.T) {
		merged := mergeSlots([]domain.TimeSlot{
			slot(9, 0, 12, 0),
			slot(10, 0, 11, 0),
		})

		require.Len(t, merged, 1)
		assert.Equal(t, slot(9, 0, 12, 0), merged[0])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, mergeSlots(nil))
	})
}

func TestFreeGaps(t *testing.T) {
	t.Run("gaps between occupied intervals", func(t *testing.T) {
		gaps := freeGaps([]domain.TimeSlot{
			slot(9, 0, 10, 0),
			slot(11, 0, 12, 0),
		}, at(9, 0), at(18, 0))

		require.Len(t, gaps, 2)
		assert.Equal(t, Slot{StartTime: at(10, 0), EndTime: at(11, 0)}, gaps[0])
		assert.Equal(t, Slot{StartTime: at(12, 0), EndTime: at(18, 0)}, gaps[1])
	})

	t.Run("no reservations yields the full range", func(t *testing.T) {
		gaps := freeGaps(nil, at(9, 0), at(18, 0))

		require.Len(t, gaps, 1)
		assert.Equal(t, Slot{StartTime: at(9, 0), EndTime: at(18, 0)}, gaps[0])
	})

	t.Run("fully occupied range yields nothing", func(t *testing.T) {
		gaps := freeGaps([]domain.TimeSlot{slot(9, 0, 18, 0)}, at(9, 0), at(18, 0))

		assert.Empty(t, gaps)
	})

	t.Run("occupied interval extending past the range edges", func(t *testing.T) {
		gaps := freeGaps([]domain.TimeSlot{slot(8, 0, 10, 0)}, at(9, 0), at(18, 0))

		require.Len(t, gaps, 1)
		assert.Equal(t, Slot{StartTime: at(10, 0), EndTime: at(18, 0)}, gaps[0])
	})

	t.Run("leading gap before the first interval", func(t *testing.T) {
		gaps := freeGaps([]domain.TimeSlot{slot(12, 0, 18, 0)}, at(9, 0), at(18, 0))

		require.Len(t, gaps, 1)
		assert.Equal(t, Slot{StartTime: at(9, 0), EndTime: at(12, 0)}, gaps[0])
	})
}

func TestOccupiedSlots(t *testing.T) {
	reservations := []*domain.Reservation{
		{ID: 1, StartTime: at(14, 0), EndTime: at(15, 0), Status: domain.StatusConfirmed},
		{ID: 2, StartTime: at(9, 0), EndTime: at(10, 0), Status: domain.StatusConfirmed},
		{ID: 3, StartTime: at(11, 0), EndTime: at(12, 0), Status: domain.StatusCancelled},
	}

	slots := occupiedSlots(reservations)

	// Cancelled reservations are skipped, output sorted by start.
	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(14, 0), slots[1].Start)
}
