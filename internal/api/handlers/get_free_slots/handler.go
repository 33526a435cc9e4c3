package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservesService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-ReservesService/internal/usecase/get_free_slots"
)

const (
	msgInvalidSpaceID   = "некорректный ID пространства"
	msgInvalidTimeRange = "некорректный диапазон времени, ожидается from и to в формате YYYY-MM-DDTHH:MM:SS"
	msgSpaceNotFound    = "пространство не найдено"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/free-slots?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId}/free-slots - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateTimeFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId}/free-slots - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeRange)
		return
	}

	to, err := time.Parse(domain.DateTimeFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId}/free-slots - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{
		SpaceID: spaceID,
		From:    from,
		To:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{spaceId}/free-slots - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, getFreeSlots.ErrInvalidTimeRange), errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{spaceId}/free-slots - Invalid range: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("GET /spaces/{spaceId}/free-slots - Failed: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
