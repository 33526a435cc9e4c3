package delete_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservesService/internal/service/spaces"
)

const (
	msgInvalidSpaceID         = "некорректный ID пространства"
	msgSpaceNotFound          = "пространство не найдено"
	msgSpaceHasActiveReserves = "у пространства есть активные бронирования"
)

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /spaces/{spaceId} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	if err := h.service.Delete(r.Context(), spaceID); err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("DELETE /spaces/{spaceId} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, spaces.ErrSpaceHasActiveReservations):
			h.logger.Warn("DELETE /spaces/{spaceId} - Space has active reservations: space_id=%d, %v", spaceID, err)
			handlers.RespondError(w, http.StatusConflict, msgSpaceHasActiveReserves)

		default:
			h.logger.Error("DELETE /spaces/{spaceId} - Failed to delete space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /spaces/{spaceId} - Space deleted successfully: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
