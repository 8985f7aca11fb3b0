package auth

import (
	"errors"
	"net/http"
	"strings"

	"freight/internal/service/policy"
	"freight/pkg/logger"
)

const (
	bearerPrefix = "Bearer "

	unauthorizedBody = `{"status":"Unauthorized"}`
	internalBody     = `{"status":"Something went wrong. Try restarting"}`
)

// Middleware пропускает дальше только запросы с валидным bearer-токеном
// и кладет пользователя в контекст.
func Middleware(log handlerLogger, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			rawToken, found := strings.CutPrefix(header, bearerPrefix)
			if !found || strings.TrimSpace(rawToken) == "" {
				writeJSON(w, http.StatusUnauthorized, unauthorizedBody)
				return
			}

			actor, err := resolver.Resolve(r.Context(), strings.TrimSpace(rawToken))
			if err != nil {
				if errors.Is(err, policy.ErrUnauthorized) {
					log.With(
						logger.NewField("path", r.URL.Path),
						logger.NewField("error", err),
					).Warn("rejected token")
					writeJSON(w, http.StatusUnauthorized, unauthorizedBody)
					return
				}

				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Error("identity resolver failed")
				writeJSON(w, http.StatusInternalServerError, internalBody)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
