package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/config"
	appHTTP "github.com/staffbook/staffbook-backend-go/internal/handler/http"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/cron"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/messaging"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
	advanceService "github.com/staffbook/staffbook-backend-go/internal/service/advance"
	attendanceService "github.com/staffbook/staffbook-backend-go/internal/service/attendance"
	authService "github.com/staffbook/staffbook-backend-go/internal/service/auth"
	holidayService "github.com/staffbook/staffbook-backend-go/internal/service/holiday"
	payrollService "github.com/staffbook/staffbook-backend-go/internal/service/payroll"
	settingService "github.com/staffbook/staffbook-backend-go/internal/service/setting"
	staffService "github.com/staffbook/staffbook-backend-go/internal/service/staff"
	userService "github.com/staffbook/staffbook-backend-go/internal/service/user"
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

	if err := database.RunMigrations(context.Background(), db); err != nil {
		fmt.Println("Error applying migrations:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	notifier := messaging.NewLogNotifier()

	staffSvc := staffService.NewStaffService(db, staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, staffRepo, holidayRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo, staffRepo, attendanceRepo)
	advanceSvc := advanceService.NewAdvanceService(db, advanceRepo, staffRepo, notifier)
	settingSvc := settingService.NewSettingService(settingRepo)
	payrollSvc := payrollService.NewPayrollService(staffRepo, attendanceRepo, holidayRepo, advanceRepo, settingSvc, notifier)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	cron.NewAdvanceJobs(advanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Staff:      appHTTP.NewStaffHandler(staffSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Advance:    appHTTP.NewAdvanceHandler(advanceSvc),
		Report:     appHTTP.NewReportHandler(payrollSvc),
		Setting:    appHTTP.NewSettingHandler(settingSvc),
		User:       appHTTP.NewUserHandler(userSvc),
	}, cfg.App.CORSOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
