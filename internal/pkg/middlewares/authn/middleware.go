package authn

import (
	"net/http"

	"courier-rating/internal/entities"
	"courier-rating/internal/pkg/auth"
	"courier-rating/pkg/logger"
)

// Middleware проверяет Bearer-токен и кладет Principal в контекст запроса.
func Middleware(log handlerLogger, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := auth.ParseBearer(secret, r.Header.Get("Authorization"))
			if err != nil {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
					logger.NewField("error", err),
				).Warn("unauthorized request")

				AuthFailureTotal.WithLabelValues("unauthorized").Inc()

				reject(w, log, http.StatusUnauthorized, `{"error":"Unauthorized"}`)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRole пускает дальше только пользователей с указанной ролью.
// Вешается после Middleware.
func RequireRole(log handlerLogger, role entities.RoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.FromContext(r.Context())
			if !ok {
				AuthFailureTotal.WithLabelValues("unauthorized").Inc()
				reject(w, log, http.StatusUnauthorized, `{"error":"Unauthorized"}`)
				return
			}

			if principal.Role != role {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("user_id", principal.UserID),
					logger.NewField("role", principal.Role.String()),
				).Warn("forbidden request")

				AuthFailureTotal.WithLabelValues("forbidden").Inc()

				reject(w, log, http.StatusForbidden, `{"error":"Forbidden"}`)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func reject(w http.ResponseWriter, log handlerLogger, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(body)); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("failed to write auth response")
	}
}
