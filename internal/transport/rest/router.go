package rest

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/hr-payroll/internal/attendance"
	"github.com/frahmantamala/hr-payroll/internal/auth"
	"github.com/frahmantamala/hr-payroll/internal/dashboard"
	"github.com/frahmantamala/hr-payroll/internal/employee"
	"github.com/frahmantamala/hr-payroll/internal/payroll"
	"github.com/frahmantamala/hr-payroll/internal/project"
	"github.com/frahmantamala/hr-payroll/internal/report"
	"github.com/frahmantamala/hr-payroll/internal/transport/middleware"
	"github.com/frahmantamala/hr-payroll/internal/user"
	"github.com/go-chi/chi"
)

// Handlers bundles every domain handler the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	Employee   *employee.Handler
	Attendance *attendance.Handler
	Project    *project.Handler
	Payroll    *payroll.Handler
	Report     *report.Handler
	Dashboard  *dashboard.Handler
	User       *user.Handler
}

// RegisterAllRoutes mounts the API under /api/v1. Everything past the auth
// endpoints requires a valid session; the staff guard covers the management
// surfaces, attendance recording additionally admits employees, and account
// administration is admin only.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	guard := auth.NewRoleGuard(logger)

	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/register", h.Auth.Register)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/dashboard", h.Dashboard.GetStats)

			pr.Route("/employees", func(er chi.Router) {
				er.Use(guard.RequireStaff())
				er.Get("/", h.Employee.ListEmployees)
				er.Post("/", h.Employee.CreateEmployee)
				er.Put("/{id}", h.Employee.UpdateEmployee)
				er.Delete("/{id}", h.Employee.DeleteEmployee)
			})

			pr.Route("/attendance", func(ar chi.Router) {
				// employees may record their own attendance; management of
				// existing rows stays with staff
				ar.With(guard.RequireRoles(auth.RoleAdmin, auth.RoleManager, auth.RoleAssistantManager, auth.RoleEmployee)).
					Post("/", h.Attendance.RecordAttendance)

				ar.Group(func(sr chi.Router) {
					sr.Use(guard.RequireStaff())
					sr.Get("/", h.Attendance.ListAttendance)
					sr.Put("/{id}", h.Attendance.UpdateAttendance)
					sr.Delete("/{id}", h.Attendance.DeleteAttendance)
				})
			})

			pr.Route("/projects", func(jr chi.Router) {
				jr.Use(guard.RequireStaff())
				jr.Get("/", h.Project.ListProjects)
				jr.Post("/", h.Project.CreateProject)
				jr.Get("/{id}", h.Project.GetProject)
				jr.Put("/{id}", h.Project.UpdateProject)
				jr.Post("/{id}/edit", h.Project.EditProject)
				jr.Delete("/{id}", h.Project.DeleteProject)
				jr.Get("/{id}/employees", h.Project.GetRoster)
				jr.Get("/{id}/payroll", h.Payroll.ProjectPayroll)
			})

			pr.Route("/payroll", func(yr chi.Router) {
				yr.Use(guard.RequireStaff())
				yr.Get("/", h.Payroll.ListPayroll)
				yr.Post("/", h.Payroll.CreatePayroll)
				yr.Get("/overview", h.Payroll.Overview)
				yr.Get("/{id}", h.Payroll.GetPayroll)
				yr.Put("/{id}", h.Payroll.UpdatePayroll)
				yr.Delete("/{id}", h.Payroll.DeletePayroll)
			})

			pr.Route("/reports", func(rr chi.Router) {
				rr.Use(guard.RequireStaff())
				rr.Get("/", h.Report.ListReports)
				rr.Post("/generate", h.Report.GenerateReport)
				rr.Get("/{id}", h.Report.ViewReport)
				rr.Get("/{id}/download", h.Report.DownloadReport)
			})

			pr.Route("/admin/users", func(ur chi.Router) {
				ur.Use(guard.RequireAdmin())
				ur.Get("/", h.User.ListUsers)
				ur.Post("/", h.User.CreateUser)
				ur.Put("/{id}", h.User.UpdateUser)
				ur.Delete("/{id}", h.User.DeleteUser)
			})
		})
	})
}
