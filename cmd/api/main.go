package main

import (
	"fmt"
	"net/http"

	"github.com/asifshaikgit/workforce-sub004/internal/config"
	appHTTP "github.com/asifshaikgit/workforce-sub004/internal/handler/http"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/database"
	"github.com/asifshaikgit/workforce-sub004/internal/pkg/jwt"
	"github.com/asifshaikgit/workforce-sub004/internal/repository/postgresql"
	auditService "github.com/asifshaikgit/workforce-sub004/internal/service/audit"
	authService "github.com/asifshaikgit/workforce-sub004/internal/service/auth"
	employeeService "github.com/asifshaikgit/workforce-sub004/internal/service/employee"
	ledgerService "github.com/asifshaikgit/workforce-sub004/internal/service/ledger"
	paycycleService "github.com/asifshaikgit/workforce-sub004/internal/service/paycycle"
	payrunService "github.com/asifshaikgit/workforce-sub004/internal/service/payrun"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	settingRepo := postgresql.NewCycleSettingRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)
	trailRepo := postgresql.NewTrailRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	settingSvc := paycycleService.NewCycleSettingService(db, settingRepo, periodRepo)
	payRunSvc := payrunService.NewPayRunService(db, settingRepo, periodRepo, paymentRepo)
	ledgerSvc := ledgerService.NewLedgerService(db, paymentRepo, periodRepo, employeeRepo, approvalRepo, trailRepo)
	trailSvc := auditService.NewTrailService(trailRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, trailRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	settingHandler := appHTTP.NewCycleSettingHandler(settingSvc)
	payRunHandler := appHTTP.NewPayRunHandler(payRunSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, trailSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		settingHandler,
		payRunHandler,
		ledgerHandler,
		employeeHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
