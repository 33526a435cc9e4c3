package get_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	occupancyScore "github.com/m04kA/SMC-ReservesService/internal/usecase/occupancy_score"
)

const (
	msgInvalidSpaceID = "некорректный ID пространства"
	msgSpaceNotFound  = "пространство не найдено"
)

type Handler struct {
	useCase OccupancyScoreUseCase
	logger  Logger
}

func NewHandler(useCase OccupancyScoreUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId}/occupancy - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &occupancyScore.Request{SpaceID: spaceID})
	if err != nil {
		switch {
		case errors.Is(err, occupancyScore.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{spaceId}/occupancy - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, occupancyScore.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{spaceId}/occupancy - Invalid space ID: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgInvalidSpaceID)

		default:
			h.logger.Error("GET /spaces/{spaceId}/occupancy - Failed: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
