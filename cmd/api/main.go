package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emsuite/ems-backend-go/internal/config"
	appHTTP "github.com/emsuite/ems-backend-go/internal/handler/http"
	"github.com/emsuite/ems-backend-go/internal/pkg/cron"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/pkg/oauth"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	analyticsService "github.com/emsuite/ems-backend-go/internal/service/analytics"
	attendanceService "github.com/emsuite/ems-backend-go/internal/service/attendance"
	authService "github.com/emsuite/ems-backend-go/internal/service/auth"
	departmentService "github.com/emsuite/ems-backend-go/internal/service/department"
	employeeService "github.com/emsuite/ems-backend-go/internal/service/employee"
	leaveService "github.com/emsuite/ems-backend-go/internal/service/leave"
	performanceService "github.com/emsuite/ems-backend-go/internal/service/performance"
	reportService "github.com/emsuite/ems-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, performanceRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRequestRepo, employeeRepo)
	performanceSvc := performanceService.NewReviewService(performanceRepo, employeeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo, leaveRequestRepo)
	reportSvc := reportService.NewReportService(analyticsSvc, employeeRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, leaveRequestRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtService),
		Department:  appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Analytics:   appHTTP.NewAnalyticsHandler(analyticsSvc, reportSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
