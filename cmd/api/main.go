package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hrweb-ph/payroll-backend-go/internal/config"
	appHTTP "github.com/hrweb-ph/payroll-backend-go/internal/handler/http"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/database"
	"github.com/hrweb-ph/payroll-backend-go/internal/pkg/jwt"
	"github.com/hrweb-ph/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrweb-ph/payroll-backend-go/internal/service/attendance"
	payrollService "github.com/hrweb-ph/payroll-backend-go/internal/service/payroll"
	summaryService "github.com/hrweb-ph/payroll-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	benefitRepo := postgresql.NewBenefitRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, logger)
	summarySvc := summaryService.NewSummaryService(db, summaryRepo, attendanceRepo, employeeRepo, benefitRepo, deductionRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, summaryRepo, employeeRepo, benefitRepo, deductionRepo, logger)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		employeeHandler,
		attendanceHandler,
		summaryHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
