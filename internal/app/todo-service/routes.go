// Package todoservice предоставляет маршруты для основного приложения.
package todoservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/todo-service/internal/http/handlers/address/addresscreate"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/admin/adminlist"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/admin/adminremove"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/todo/create"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/todo/list"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/todo/read"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/todo/remove"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/todo/update"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/user/changepassword"
	"github.com/magabrotheeeer/todo-service/internal/http/handlers/user/profile"
	"github.com/magabrotheeeer/todo-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/todo-service/internal/lib/jwt"
	addressservice "github.com/magabrotheeeer/todo-service/internal/services/address"
	authservice "github.com/magabrotheeeer/todo-service/internal/services/auth"
	todosvc "github.com/magabrotheeeer/todo-service/internal/services/todo"
	userservice "github.com/magabrotheeeer/todo-service/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	jwtMaker jwt.Maker,
	authService *authservice.AuthService,
	todoService *todosvc.ToDoService,
	userService *userservice.UserService,
	addressService *addressservice.AddressService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/auth/", register.New(logger, authService).ServeHTTP)
	r.Post("/auth/token", login.New(logger, authService).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Post("/todo/new_todo", create.New(logger, todoService).ServeHTTP)
		r.Get("/todos", list.New(logger, todoService).ServeHTTP)
		r.Get("/todo/{id}", read.New(logger, todoService).ServeHTTP)
		r.Put("/todo/{id}", update.New(logger, todoService).ServeHTTP)
		r.Delete("/todo/{id}", remove.New(logger, todoService).ServeHTTP)

		r.Post("/address/", addresscreate.New(logger, addressService).ServeHTTP)
		r.Get("/user/", profile.New(logger, userService).ServeHTTP)
		r.Put("/user/password", changepassword.New(logger, userService).ServeHTTP)

		// Административная группа
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AdminOnlyMiddleware(logger))
			r.Get("/admin/todo", adminlist.New(logger, todoService).ServeHTTP)
			r.Delete("/admin/todo/{id}", adminremove.New(logger, todoService).ServeHTTP)
		})
	})
}
