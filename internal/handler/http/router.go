package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/emsuite/ems-backend-go/internal/config"
	"github.com/emsuite/ems-backend-go/internal/domain/user"
	"github.com/emsuite/ems-backend-go/internal/handler/http/middleware"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth        AuthHandler
	Department  DepartmentHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	Performance PerformanceHandler
	Analytics   AnalyticsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)

			if cfg.GoogleOAuthEnabled() {
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
					r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
				})
			}

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/departments", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionDepartmentView)).Get("/", h.Department.List)
				r.With(middleware.RequirePermission(user.PermissionDepartmentView)).Get("/{id}", h.Department.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionDepartmentManage))
					r.Post("/", h.Department.Create)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
					r.Post("/{id}/activate", h.Department.Activate)
					r.Post("/{id}/deactivate", h.Department.Deactivate)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/", h.Employee.List)
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/{id}", h.Employee.Get)
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/{id}/profile", h.Employee.Profile)
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/{employeeID}/attendance/summary", h.Attendance.Summary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Post("/{id}/activate", h.Employee.Activate)
					r.Post("/{id}/deactivate", h.Employee.Deactivate)
				})

				r.With(middleware.RequirePermission(user.PermissionEmployeeDelete)).Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/", h.Attendance.List)
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/{id}", h.Attendance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceCreate))
					r.Post("/", h.Attendance.Create)
					r.Post("/bulk", h.Attendance.BulkCreate)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceManage))
					r.Put("/{id}", h.Attendance.Update)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveView)).Get("/", h.Leave.List)
				r.With(middleware.RequirePermission(user.PermissionLeaveView)).Get("/{id}", h.Leave.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveCreate))
					r.Post("/", h.Leave.Create)
					r.Put("/{id}", h.Leave.Update)
					r.Delete("/{id}", h.Leave.Delete)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/performance-reviews", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionPerformanceView)).Get("/", h.Performance.List)
				r.With(middleware.RequirePermission(user.PermissionPerformanceView)).Get("/{id}", h.Performance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPerformanceManage))
					r.Post("/", h.Performance.Create)
					r.Put("/{id}", h.Performance.Update)
					r.Delete("/{id}", h.Performance.Delete)
				})
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAnalyticsView))
				r.Get("/attendance", h.Analytics.Attendance)
				r.Get("/employees", h.Analytics.Employees)
				r.Get("/dashboard", h.Analytics.Dashboard)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsExport))
				r.Get("/attendance.xlsx", h.Analytics.ExportAttendanceXLSX)
				r.Get("/attendance.pdf", h.Analytics.ExportAttendancePDF)
				r.Get("/employees.xlsx", h.Analytics.ExportEmployeesXLSX)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Resource not found")
	})

	return r
}
