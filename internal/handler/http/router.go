package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/tagtrack/tagtrack-backend-go/internal/handler/http/middleware"
	"github.com/tagtrack/tagtrack-backend-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, authHandler AuthHandler, frontendURL string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tagtrack"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/manager/register", authHandler.RegisterManager)
		r.Post("/employee/register", authHandler.RegisterEmployee)
		r.Post("/manager/login", authHandler.LoginManager)
		r.Post("/employee/login", authHandler.LoginEmployee)

		r.Route("/oauth", func(r chi.Router) {
			r.Get("/google", authHandler.LoginWithGoogle)
			r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
		})

		// Manager only
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRequired(jwtService))
			r.Use(middleware.RequireManager)

			r.Patch("/employee/status", authHandler.UpdateEmployeeStatus)
			r.Get("/employees/pending", authHandler.GetPendingEmployees)
		})
	})

	return r
}
