package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/cron"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	repository "github.com/attendly/attendance-backend-go/internal/repository/docstore"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/attendly/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	store := docstore.NewPostgresStore(db)

	employeeRepo := repository.NewEmployeeRepository(store)
	attendanceRepo := repository.NewAttendanceRepository(store)
	userRepo := repository.NewUserRepository(store)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	reportSvc := reportService.NewReportService(attendanceRepo, logger)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo)

	auditInterval, err := time.ParseDuration(cfg.Audit.Interval)
	if err != nil {
		log.Fatal("Invalid AUDIT_INTERVAL:", err)
	}
	scheduler := cron.NewScheduler()
	cron.NewAuditJobs(attendanceRepo, cfg.Audit.LookbackDays, auditInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App.Env, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
