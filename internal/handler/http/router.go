package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	roleHandler RoleHandler,
	employeeHandler EmployeeHandler,
	payslipHandler PayslipHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "quillhr"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", roleHandler.ListRoles)
			r.Post("/", roleHandler.CreateRole)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", roleHandler.GetRole)
				r.Put("/", roleHandler.UpdateRole)
				r.Delete("/", roleHandler.DeleteRole)
				r.Post("/responsibilities", roleHandler.AddResponsibility)
				r.Delete("/responsibilities", roleHandler.RemoveResponsibility)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
			})
			r.Get("/{employeeId}/payslips", payslipHandler.ListPayslipsByEmployee)
		})

		r.Route("/payslips", func(r chi.Router) {
			r.Post("/calculate", payslipHandler.CalculatePayslip)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", payslipHandler.GetPayslip)
				r.Get("/pdf", payslipHandler.DownloadPayslipPDF)
			})
		})

		r.Get("/dashboard", dashboardHandler.GetDashboard)
	})

	return r
}
