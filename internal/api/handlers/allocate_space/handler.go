package allocate_space

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	allocateSpace "github.com/m04kA/SMC-ReservesService/internal/usecase/allocate_space"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgNoSpaceAvailable   = "нет свободных пространств под запрошенные параметры"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgStartInPast        = "время начала не может быть в прошлом"
	msgInvalidInput       = "некорректные параметры подбора"
)

type Handler struct {
	useCase AllocateSpaceUseCase
	logger  Logger
}

func NewHandler(useCase AllocateSpaceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AllocateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /allocations - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, allocateSpace.ErrNoSpaceAvailable):
			h.logger.Warn("POST /allocations - No space available: capacity=%d", req.RequiredCapacity)
			handlers.RespondError(w, http.StatusConflict, msgNoSpaceAvailable)

		case errors.Is(err, allocateSpace.ErrInvalidTimeRange):
			h.logger.Warn("POST /allocations - Invalid time range")
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, allocateSpace.ErrStartInPast):
			h.logger.Warn("POST /allocations - Start in past")
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, allocateSpace.ErrInvalidInput):
			h.logger.Warn("POST /allocations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /allocations - Failed to allocate space: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /allocations - Space allocated: space_id=%d, reservation_id=%d",
		result.SpaceID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
