package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-ReservesService/internal/api/handlers"
)

// UserEmailHeader заголовок с email аутентифицированного пользователя.
// Выдачу сессий делает внешний сервис, здесь проверяется только наличие
const UserEmailHeader = "X-User-Email"

const msgMissingUserEmail = "требуется заголовок X-User-Email"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет наличие заголовка X-User-Email на защищенных маршрутах
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(UserEmailHeader) == "" {
				logger.Warn("%s %s - missing %s header", r.Method, r.URL.Path, UserEmailHeader)
				handlers.RespondUnauthorized(w, msgMissingUserEmail)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
