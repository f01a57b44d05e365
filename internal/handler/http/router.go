package http

import (
	"log/slog"
	"os"

	"github.com/asifshaikgit/workforce-sub004/internal/handler/http/middleware"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	settingHandler CycleSettingHandler,
	payRunHandler PayRunHandler,
	ledgerHandler LedgerHandler,
	employeeHandler EmployeeHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/pay-cycle-settings", func(r chi.Router) {
				r.Get("/", settingHandler.List)
				r.Get("/{id}", settingHandler.GetByID)
				r.Get("/{settingsId}/periods", payRunHandler.ListBySettings)

				// Payroll manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePayrollManager)
					r.Post("/", settingHandler.Create)
					r.Put("/{id}", settingHandler.Update)
					r.Post("/{settingsId}/periods/generate", payRunHandler.Generate)
				})
			})

			r.Route("/pay-periods", func(r chi.Router) {
				r.Get("/{id}", payRunHandler.GetByID)
				r.Get("/{id}/payments", ledgerHandler.ListByPeriod)

				// Payroll manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePayrollManager)
					r.Post("/{id}/submit", payRunHandler.Submit)
					r.Post("/{id}/skip", payRunHandler.Skip)
					r.Put("/{id}/payments", ledgerHandler.RecordPayment)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.GetByID)
				r.Get("/{id}/audit-trail", employeeHandler.GetAuditTrail)

				// Payroll manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePayrollManager)
					r.Put("/{id}/compensation", employeeHandler.UpdateCompensation)
				})
			})
		})
	})
	return r
}
