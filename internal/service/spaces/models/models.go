package models

import (
	"time"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
)

// Request модели

// CreateSpaceRequest запрос на создание пространства
type CreateSpaceRequest struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Type         string   `json:"type"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"pricePerHour"`
	Amenities    []string `json:"amenities,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Floor        *string  `json:"floor,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Available    *bool    `json:"available,omitempty"`
}

// ToDomain конвертирует request в domain модель
// Available по умолчанию true, если не передан
func (r *CreateSpaceRequest) ToDomain() *domain.Space {
	available := true
	if r.Available != nil {
		available = *r.Available
	}

	return &domain.Space{
		Name:         r.Name,
		Description:  r.Description,
		Type:         domain.SpaceType(r.Type),
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Amenities:    r.Amenities,
		ImageURL:     r.ImageURL,
		Floor:        r.Floor,
		Location:     r.Location,
		Available:    available,
	}
}

// UpdateSpaceRequest запрос на обновление пространства
// Передаются все поля целиком, частичное обновление не поддерживается
type UpdateSpaceRequest struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Type         string   `json:"type"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"pricePerHour"`
	Amenities    []string `json:"amenities,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Floor        *string  `json:"floor,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Available    bool     `json:"available"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateSpaceRequest) ToDomain(id int64) *domain.Space {
	return &domain.Space{
		ID:           id,
		Name:         r.Name,
		Description:  r.Description,
		Type:         domain.SpaceType(r.Type),
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Amenities:    r.Amenities,
		ImageURL:     r.ImageURL,
		Floor:        r.Floor,
		Location:     r.Location,
		Available:    r.Available,
	}
}

// ListSpacesRequest запрос на получение пространств с фильтрацией
type ListSpacesRequest struct {
	Type            *string  `json:"type,omitempty"`
	MinCapacity     *int     `json:"minCapacity,omitempty"`
	MaxPricePerHour *float64 `json:"maxPricePerHour,omitempty"`
	AvailableOnly   bool     `json:"availableOnly,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSpacesRequest) ToDomainFilter() domain.SpaceFilter {
	filter := domain.SpaceFilter{
		MinCapacity:     r.MinCapacity,
		MaxPricePerHour: r.MaxPricePerHour,
		AvailableOnly:   r.AvailableOnly,
	}

	if r.Type != nil {
		t := domain.SpaceType(*r.Type)
		filter.Type = &t
	}

	return filter
}

// Response модели

// SpaceResponse ответ с данными пространства
type SpaceResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Type         string   `json:"type"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"pricePerHour"`
	Amenities    []string `json:"amenities"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Floor        *string  `json:"floor,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Available    bool     `json:"available"`

	CreatedAt time.Time `json:"createdAt"`
}

// SpaceListResponse ответ со списком пространств
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// Методы конвертации

// FromDomainSpace конвертирует domain модель в DTO
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	if s == nil {
		return nil
	}

	amenities := s.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &SpaceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Type:         string(s.Type),
		Capacity:     s.Capacity,
		PricePerHour: s.PricePerHour,
		Amenities:    amenities,
		ImageURL:     s.ImageURL,
		Floor:        s.Floor,
		Location:     s.Location,
		Available:    s.Available,
		CreatedAt:    s.CreatedAt,
	}
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, 0, len(spaces)),
	}

	for _, space := range spaces {
		if converted := FromDomainSpace(space); converted != nil {
			resp.Spaces = append(resp.Spaces, *converted)
		}
	}

	return resp
}
