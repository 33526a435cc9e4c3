package list_spaces

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservesService/internal/service/spaces"
	"github.com/m04kA/SMC-ReservesService/internal/service/spaces/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/spaces?type=&minCapacity=&maxPricePerHour=&availableOnly=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /spaces - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("GET /spaces - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /spaces - Failed to list spaces: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery разбирает query-параметры фильтрации
func parseQuery(r *http.Request) (*models.ListSpacesRequest, error) {
	query := r.URL.Query()
	req := &models.ListSpacesRequest{}

	if value := query.Get("type"); value != "" {
		req.Type = &value
	}

	if value := query.Get("minCapacity"); value != "" {
		minCapacity, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		req.MinCapacity = &minCapacity
	}

	if value := query.Get("maxPricePerHour"); value != "" {
		maxPrice, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		req.MaxPricePerHour = &maxPrice
	}

	if value := query.Get("availableOnly"); value != "" {
		availableOnly, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		req.AvailableOnly = availableOnly
	}

	return req, nil
}
