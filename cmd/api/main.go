package main

import (
	"fmt"
	"net/http"

	"github.com/ladang-systems/payroll-backend-go/internal/config"
	appHTTP "github.com/ladang-systems/payroll-backend-go/internal/handler/http"
	"github.com/ladang-systems/payroll-backend-go/internal/pkg/cron"
	"github.com/ladang-systems/payroll-backend-go/internal/pkg/database"
	"github.com/ladang-systems/payroll-backend-go/internal/pkg/jwt"
	"github.com/ladang-systems/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/ladang-systems/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Payroll.WorkerLimit)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workLogRepo := postgresql.NewWorkLogRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	payrollSvc := payrollService.NewPayrollService(
		workLogRepo,
		payrollRepo,
		cfg.Payroll.WorkerLimit,
		cfg.Payroll.EndMonthSplit,
	)

	scheduler := cron.NewScheduler()
	payrollJobs := cron.NewPayrollJobs(payrollSvc, cfg.Payroll.ResyncWindowDays)
	payrollJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler, cfg.App.Env, cfg.App.EstateName)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
