package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBilledHours(t *testing.T) {
	start := time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		minutes int
		want    int64
	}{
		{name: "sub-hour window bills the one hour minimum", minutes: 30, want: 1},
		{name: "exactly one hour", minutes: 60, want: 1},
		{name: "61 minutes rounds up to two hours", minutes: 61, want: 2},
		{name: "two full hours", minutes: 120, want: 2},
		{name: "two hours and one minute", minutes: 121, want: 3},
		{name: "zero-duration window still bills one hour", minutes: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := start.Add(time.Duration(tt.minutes) * time.Minute)
			assert.Equal(t, tt.want, BilledHours(start, end))
		})
	}
}

func TestTotalCost(t *testing.T) {
	start := time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)

	t.Run("61 minutes at 10 per hour bills 20", func(t *testing.T) {
		end := start.Add(61 * time.Minute)
		assert.InDelta(t, 20.0, TotalCost(10.0, start, end), 1e-9)
	})

	t.Run("30 minutes at 10 per hour bills the minimum 10", func(t *testing.T) {
		end := start.Add(30 * time.Minute)
		assert.InDelta(t, 10.0, TotalCost(10.0, start, end), 1e-9)
	})
}
