package get_free_slots

import (
	"github.com/m04kA/SMC-ReservesService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-ReservesService/internal/usecase/get_free_slots"
)

// SlotResponse свободное окно в HTTP ответе
type SlotResponse struct {
	StartTime string `json:"startTime"` // "2025-11-10T09:00:00"
	EndTime   string `json:"endTime"`
}

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	SpaceID int64          `json:"spaceId"`
	From    string         `json:"from"`
	To      string         `json:"to"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.Format(domain.DateTimeFormat),
			EndTime:   slot.EndTime.Format(domain.DateTimeFormat),
		})
	}

	return &FreeSlotsResponse{
		SpaceID: resp.SpaceID,
		From:    resp.From.Format(domain.DateTimeFormat),
		To:      resp.To.Format(domain.DateTimeFormat),
		Slots:   slots,
	}
}
