package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffbook/staffbook-backend-go/internal/handler/http/middleware"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Staff      StaffHandler
	Attendance AttendanceHandler
	Holiday    HolidayHandler
	Advance    AdvanceHandler
	Report     ReportHandler
	Setting    SettingHandler
	User       UserHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffbook"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
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
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.Staff.List)
				r.Post("/", h.Staff.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Staff.Get)
					r.Put("/", h.Staff.Update)
					r.Get("/salary-history", h.Staff.GetSalaryHistory)
					r.Put("/salary", h.Staff.UpdateSalary)
					r.Get("/salary-cycle", h.Staff.GetSalaryCycle)
					r.Put("/salary-cycle", h.Staff.UpdateSalaryCycle)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Delete("/", h.Staff.Delete)
					})
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Mark)
				r.Get("/daily", h.Attendance.GetDaily)
				r.Get("/monthly", h.Attendance.GetMonthlyAll)
				r.Get("/monthly/{staffID}", h.Attendance.GetMonthly)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Add)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{date}", h.Holiday.Remove)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", h.Advance.List)
				r.Post("/", h.Advance.Add)
				r.Get("/outstanding", h.Advance.Outstanding)
				r.Get("/pending", h.Advance.PendingAdvances)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Advance.Get)
					r.Post("/payments", h.Advance.RecordPayment)
					r.Get("/repayments", h.Advance.GetRepayments)
				})
			})

			r.Route("/repayments", func(r chi.Router) {
				r.Get("/pending", h.Advance.PendingRepayments)
				r.Post("/{id}/paid", h.Advance.MarkRepaymentPaid)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", h.Report.Monthly)
				r.Get("/dashboard", h.Report.Dashboard)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/monthly/notify", h.Report.NotifyMonthly)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", h.Setting.Get)
					r.Put("/", h.Setting.Update)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
				})
			})
		})
	})

	return r
}
