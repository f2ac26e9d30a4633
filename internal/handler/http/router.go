package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workdocs/leave-engine-go/internal/handler/http/middleware"
	"github.com/workdocs/leave-engine-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	entitlementHandler EntitlementHandler,
	calendarHandler CalendarHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.ListEmployees)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}/saturday-policy", employeeHandler.SetSaturdayPolicy)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/", leaveHandler.ListRequests)
					r.Get("/{id}", leaveHandler.GetRequest)
					r.Put("/{id}", leaveHandler.UpdateRequest)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Delete("/{id}", leaveHandler.DeleteRequest)
						r.Post("/{id}/approve", leaveHandler.ApproveRequest)
						r.Post("/{id}/reject", leaveHandler.RejectRequest)
					})
				})

				r.Post("/preview", leaveHandler.Preview)

				r.Route("/entitlements/{employeeID}", func(r chi.Router) {
					r.Get("/", entitlementHandler.ListEntitlements)
					r.Get("/{year}", entitlementHandler.GetEntitlement)
					r.Get("/carry-over", entitlementHandler.CarryOverHistory)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/{year}", entitlementHandler.AdjustEntitlement)
						r.Post("/carry-over", entitlementHandler.CarryOver)
					})
				})

				r.Route("/calendar", func(r chi.Router) {
					r.Get("/day", calendarHandler.AbsentToday)
					r.Get("/week", calendarHandler.AbsentThisWeek)
					r.Get("/month", calendarHandler.PlannedThisMonth)
				})
			})
		})
	})

	return r
}
