package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-ReservesService/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidDateTime      = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgReservationNotFound  = "бронирование не найдено"
	msgReservationCancelled = "бронирование отменено и не может быть изменено"
	msgTimeConflict         = "выбранное окно пересекается с существующим бронированием"
	msgInvalidTimeRange     = "время окончания должно быть позже времени начала"
	msgStartInPast          = "время начала не может быть в прошлом"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{reservationId} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{reservationId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{reservationId} - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{reservationId} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrReservationCancelled):
			h.logger.Warn("PUT /reservations/{reservationId} - Cancelled: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgReservationCancelled)

		case errors.Is(err, updateReservation.ErrTimeConflict):
			h.logger.Warn("PUT /reservations/{reservationId} - Time conflict: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, updateReservation.ErrInvalidTimeRange):
			h.logger.Warn("PUT /reservations/{reservationId} - Invalid time range: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateReservation.ErrStartInPast):
			h.logger.Warn("PUT /reservations/{reservationId} - Start in past: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{reservationId} - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{reservationId} - Failed to update: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{reservationId} - Reservation updated successfully: reservation_id=%d",
		reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
