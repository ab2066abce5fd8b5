package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/TMP-SchedulingService/internal/api/handlers"
)

type ctxKey int

const authHeaderKey ctxKey = iota

const msgMissingAuth = "требуется заголовок Authorization"

// Auth требует наличие заголовка Authorization и переносит его в контекст
// запроса. Содержимое заголовка непрозрачно для сервиса: аутентификацией
// владеет бэкенд, сюда заголовок попадает только для проброса дальше
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			handlers.RespondUnauthorized(w, msgMissingAuth)
			return
		}

		ctx := context.WithValue(r.Context(), authHeaderKey, auth)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthHeaderFromContext возвращает заголовок Authorization из контекста
func AuthHeaderFromContext(ctx context.Context) (string, bool) {
	auth, ok := ctx.Value(authHeaderKey).(string)
	return auth, ok && auth != ""
}

// ContextCredentials поставщик учетных данных для интеграционных клиентов,
// читающий заголовок Authorization из контекста запроса
type ContextCredentials struct{}

// NewContextCredentials создает поставщика учетных данных из контекста
func NewContextCredentials() *ContextCredentials {
	return &ContextCredentials{}
}

// AuthHeader возвращает значение заголовка Authorization из контекста
func (c *ContextCredentials) AuthHeader(ctx context.Context) (string, bool) {
	return AuthHeaderFromContext(ctx)
}
