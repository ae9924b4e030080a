package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/todo-service/internal/http/response"
	"github.com/magabrotheeeer/todo-service/internal/lib/policy"
)

// AdminOnlyMiddleware пропускает дальше только пользователей с ролью admin.
// Решение принимает общая функция policy.Authorize; отказ отдается как 401
// до вызова обработчика, хранилище при этом не затрагивается.
func AdminOnlyMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminOnlyMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			identity, ok := Identity(r.Context())
			if !ok || !policy.Authorize(identity, policy.ActionAdminOnly, 0) {
				log.Error("admin access denied", slog.String("username", identity.Username))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
