package domain

import "time"

// SpaceType represents the kind of bookable space
type SpaceType string

const (
	TypeMeetingRoom    SpaceType = "meeting_room"
	TypeEventHall      SpaceType = "event_hall"
	TypeCoworkingSpace SpaceType = "coworking_space"
	TypeConferenceRoom SpaceType = "conference_room"
	TypeTrainingRoom   SpaceType = "training_room"
	TypeAuditorium     SpaceType = "auditorium"
	TypeOther          SpaceType = "other"
)

// ValidSpaceTypes список допустимых типов пространств
var ValidSpaceTypes = []SpaceType{
	TypeMeetingRoom,
	TypeEventHall,
	TypeCoworkingSpace,
	TypeConferenceRoom,
	TypeTrainingRoom,
	TypeAuditorium,
	TypeOther,
}

// IsValid returns true if the type is one of the known space types
func (t SpaceType) IsValid() bool {
	for _, valid := range ValidSpaceTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// Space represents a bookable physical space (room, hall, desk)
type Space struct {
	ID           int64
	Name         string
	Description  *string
	Type         SpaceType
	Capacity     int     // минимум 1
	PricePerHour float64 // строго больше нуля
	Amenities    []string
	ImageURL     *string
	Floor        *string
	Location     *string
	Available    bool // флаг доступности для новых бронирований
	CreatedAt    time.Time
}

// CanBeBooked returns true if new reservations may be created for the space
func (s *Space) CanBeBooked() bool {
	return s.Available
}

// SpaceFilter фильтр для выборки пространств
type SpaceFilter struct {
	Type            *SpaceType // Фильтр по типу (опционально)
	MinCapacity     *int       // Минимальная вместимость (опционально)
	MaxPricePerHour *float64   // Максимальная цена за час (опционально)
	AvailableOnly   bool       // Только доступные для бронирования
}
