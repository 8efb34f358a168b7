package request_id

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey struct{}

const Header = "X-Request-Id"

// Middleware прокидывает идентификатор запроса: берёт клиентский из заголовка
// или генерирует новый, кладёт его в контекст и в заголовок ответа.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(Header)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set(Header, requestID)

			ctx := context.WithValue(r.Context(), ctxKey{}, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext возвращает идентификатор запроса или пустую строку.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
