package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrweb-ph/payroll-backend-go/internal/config"
	"github.com/hrweb-ph/payroll-backend-go/internal/handler/http/middleware"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	summaryHandler SummaryHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListActive)
				r.Get("/{id}", employeeHandler.Get)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/", attendanceHandler.Create)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)
				r.Put("/{id}", attendanceHandler.Update)
				r.Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/summaries", func(r chi.Router) {
				r.Post("/generate", summaryHandler.Generate)
				r.Get("/", summaryHandler.List)
				r.Get("/{id}", summaryHandler.Get)
				r.Post("/{id}/post", summaryHandler.Post)
				r.Post("/{id}/lock", summaryHandler.Lock)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/generate", payrollHandler.Generate)
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)
				r.Put("/{id}", payrollHandler.Update)
				r.Post("/{id}/recalculate", payrollHandler.Recalculate)
				r.Post("/{id}/approve", payrollHandler.Approve)
				r.Post("/{id}/reject", payrollHandler.Reject)
				r.Post("/{id}/finalize", payrollHandler.Finalize)
				r.Post("/{id}/mark-paid", payrollHandler.MarkPaid)

				r.Put("/benefits", payrollHandler.UpsertBenefit)
				r.Get("/benefits", payrollHandler.ListBenefits)
				r.Put("/deductions", payrollHandler.UpsertDeduction)
				r.Get("/deductions", payrollHandler.ListDeductions)
				r.Post("/defaults/copy", payrollHandler.CopyFromDefault)
			})
		})
	})

	return r
}
