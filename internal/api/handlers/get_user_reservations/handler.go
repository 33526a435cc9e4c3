package get_user_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservesService/internal/api/middleware"
)

const (
	msgMissingUserEmail = "требуется заголовок X-User-Email"
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

// Handle GET /api/v1/reservations/my
// История бронирований пользователя по email из заголовка аутентификации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get(middleware.UserEmailHeader)
	if email == "" {
		h.logger.Warn("GET /reservations/my - Missing user email header")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	result, err := h.service.GetByUserEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /reservations/my - Failed to get reservations: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
