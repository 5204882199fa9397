package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
)

type userIDKey struct{}

// HeaderUserID заголовок с ID аутентифицированного пользователя
const HeaderUserID = "X-User-ID"

// Auth проверяет наличие корректного заголовка X-User-ID и кладет
// ID пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID достает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
