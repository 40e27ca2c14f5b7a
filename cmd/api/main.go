package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/staffhq/attendance-backend-go/internal/config"
	appHTTP "github.com/staffhq/attendance-backend-go/internal/handler/http"
	"github.com/staffhq/attendance-backend-go/internal/pkg/database"
	"github.com/staffhq/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffhq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhq/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/staffhq/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/staffhq/attendance-backend-go/internal/service/employee"
	leaveService "github.com/staffhq/attendance-backend-go/internal/service/leave"
	notificationService "github.com/staffhq/attendance-backend-go/internal/service/notification"
	payrollService "github.com/staffhq/attendance-backend-go/internal/service/payroll"
	settingService "github.com/staffhq/attendance-backend-go/internal/service/setting"
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
	settingRepo := postgresql.NewSettingRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewVerifier(cfg.JWT.Secret)

	bus := notificationService.NewBus(256)

	settings := settingService.NewSettingService(settingRepo)
	employees := employeeService.NewEmployeeService(employeeRepo)
	attendances := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeRepo)
	rates := payrollService.NewRateCalculator(settings)
	payrolls := payrollService.NewPayrollService(
		txManager,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		settings,
		rates,
	)
	leaves := leaveService.NewLeaveService(txManager, leaveRepo, employeeRepo, bus, payrolls)
	dashboards := dashboardService.NewDashboardService(dashboardRepo)
	notifier := notificationService.NewNotifier(notificationRepo, settings, bus.Events())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go notifier.Run(ctx)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Employee:     appHTTP.NewEmployeeHandler(employees),
		Attendance:   appHTTP.NewAttendanceHandler(attendances),
		Leave:        appHTTP.NewLeaveHandler(leaves),
		Payroll:      appHTTP.NewPayrollHandler(payrolls),
		Dashboard:    appHTTP.NewDashboardHandler(dashboards),
		Setting:      appHTTP.NewSettingHandler(settings),
		Notification: appHTTP.NewNotificationHandler(notificationRepo),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "addr", addr, "env", cfg.App.Env)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Println("Server error:", err)
		os.Exit(1)
	}
}
