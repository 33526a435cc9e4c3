package domain

// Time format constants
// Все времена наивные (без таймзоны), храним и передаем в одном формате
const (
	DateTimeFormat = "2006-01-02T15:04:05"
	DateFormat     = "2006-01-02"
)

// Business validation constants
const (
	MinCapacity    = 1
	MaxNameLength  = 100
	MaxNotesLength = 500
)

// Allocation constants
const (
	// MaxCandidateSpaces сколько кандидатов отдает best-fit отбор
	MaxCandidateSpaces = 5
)

// Occupancy scoring constants
const (
	// OccupancyWindowDays скользящее окно анализа занятости
	OccupancyWindowDays = 30

	// OccupancyBookableHoursPerDay условное число бронируемых часов в сутках
	OccupancyBookableHoursPerDay = 12

	// OccupancyTotalHours знаменатель метрики занятости (30 дней * 12 часов)
	OccupancyTotalHours = OccupancyWindowDays * OccupancyBookableHoursPerDay
)
