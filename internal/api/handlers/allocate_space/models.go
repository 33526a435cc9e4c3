package allocate_space

import (
	"time"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	allocateSpace "github.com/m04kA/SMC-ReservesService/internal/usecase/allocate_space"
)

// AllocateSpaceRequest HTTP request model
type AllocateSpaceRequest struct {
	RequiredCapacity int      `json:"requiredCapacity"`
	MaxPricePerHour  *float64 `json:"maxPricePerHour,omitempty"`
	StartTime        string   `json:"startTime"` // "2025-11-10T09:00:00"
	EndTime          string   `json:"endTime"`
	UserName         string   `json:"userName"`
	UserEmail        string   `json:"userEmail"`
	UserPhone        *string  `json:"userPhone,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// AllocationResponse HTTP response model
type AllocationResponse struct {
	ID         int64   `json:"id"`
	SpaceID    int64   `json:"spaceId"`
	SpaceName  string  `json:"spaceName"`
	UserName   string  `json:"userName"`
	UserEmail  string  `json:"userEmail"`
	UserPhone  *string `json:"userPhone,omitempty"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AllocateSpaceRequest) ToUseCaseRequest() (*allocateSpace.Request, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(domain.DateTimeFormat, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &allocateSpace.Request{
		RequiredCapacity: r.RequiredCapacity,
		MaxPricePerHour:  r.MaxPricePerHour,
		StartTime:        startTime,
		EndTime:          endTime,
		UserName:         r.UserName,
		UserEmail:        r.UserEmail,
		UserPhone:        r.UserPhone,
		Notes:            r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *allocateSpace.Response) *AllocationResponse {
	return &AllocationResponse{
		ID:         resp.ID,
		SpaceID:    resp.SpaceID,
		SpaceName:  resp.SpaceName,
		UserName:   resp.UserName,
		UserEmail:  resp.UserEmail,
		UserPhone:  resp.UserPhone,
		StartTime:  resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:    resp.EndTime.Format(domain.DateTimeFormat),
		Status:     resp.Status,
		TotalPrice: resp.TotalPrice,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
