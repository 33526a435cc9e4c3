package create_space

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservesService/internal/service/spaces"
	"github.com/m04kA/SMC-ReservesService/internal/service/spaces/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSpaceData   = "некорректные данные пространства"
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

// Handle POST /api/v1/spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("POST /spaces - Invalid space data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpaceData)

		default:
			h.logger.Error("POST /spaces - Failed to create space: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces - Space created successfully: space_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
