package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает время жизни контекста запроса. Транзакции
// назначения и перехода состояния откатываются по этому же контексту.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
