package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservesService/internal/domain"
	updateReservation "github.com/m04kA/SMC-ReservesService/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	StartTime string  `json:"startTime"` // "2025-11-10T09:00:00"
	EndTime   string  `json:"endTime"`
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
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
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID int64) (*updateReservation.Request, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(domain.DateTimeFormat, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &updateReservation.Request{
		ReservationID: reservationID,
		StartTime:     startTime,
		EndTime:       endTime,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
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
