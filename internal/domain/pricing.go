package domain

import "time"

// BilledHours converts a reservation window into billed hours: minutes are
// rounded up to the next whole hour, with a floor of one hour. The same rule
// is used for allocator ranking and for the persisted total price, so the
// amount shown never diverges from the amount charged.
func BilledHours(start, end time.Time) int64 {
	minutes := int64(end.Sub(start).Minutes())
	hours := (minutes + 59) / 60
	if hours < 1 {
		hours = 1
	}
	return hours
}

// TotalCost returns the projected cost of occupying a space for the window
func TotalCost(pricePerHour float64, start, end time.Time) float64 {
	return pricePerHour * float64(BilledHours(start, end))
}
