package list_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservesService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservesService/internal/service/reservations/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?spaceId=&status=&userEmail=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery разбирает query-параметры фильтрации
func parseQuery(r *http.Request) (*models.ListReservationsRequest, error) {
	query := r.URL.Query()
	req := &models.ListReservationsRequest{}

	if value := query.Get("spaceId"); value != "" {
		spaceID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		req.SpaceID = &spaceID
	}

	if value := query.Get("status"); value != "" {
		req.Status = &value
	}

	if value := query.Get("userEmail"); value != "" {
		req.UserEmail = &value
	}

	return req, nil
}
