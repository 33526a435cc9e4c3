package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2025, 11, 10, hour, min, 0, 0, time.UTC)
}

func TestTimeSlot_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeSlot
		b    TimeSlot
		want bool
	}{
		{
			name: "partial overlap",
			a:    TimeSlot{Start: ts(9, 0), End: ts(11, 0)},
			b:    TimeSlot{Start: ts(10, 0), End: ts(12, 0)},
			want: true,
		},
		{
			name: "contained interval",
			a:    TimeSlot{Start: ts(9, 0), End: ts(18, 0)},
			b:    TimeSlot{Start: ts(10, 0), End: ts(11, 0)},
			want: true,
		},
		{
			name: "identical intervals",
			a:    TimeSlot{Start: ts(9, 0), End: ts(10, 0)},
			b:    TimeSlot{Start: ts(9, 0), End: ts(10, 0)},
			want: true,
		},
		{
			name: "touching intervals do not conflict",
			a:    TimeSlot{Start: ts(9, 0), End: ts(10, 0)},
			b:    TimeSlot{Start: ts(10, 0), End: ts(11, 0)},
			want: false,
		},
		{
			name: "disjoint intervals",
			a:    TimeSlot{Start: ts(9, 0), End: ts(10, 0)},
			b:    TimeSlot{Start: ts(14, 0), End: ts(15, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeSlot_DurationMinutes(t *testing.T) {
	slot := TimeSlot{Start: ts(9, 0), End: ts(10, 30)}
	assert.Equal(t, int64(90), slot.DurationMinutes())
}
