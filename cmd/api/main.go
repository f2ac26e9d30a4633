package main

import (
	"fmt"
	"net/http"

	"github.com/workdocs/leave-engine-go/internal/config"
	appHTTP "github.com/workdocs/leave-engine-go/internal/handler/http"
	"github.com/workdocs/leave-engine-go/internal/pkg/database"
	"github.com/workdocs/leave-engine-go/internal/pkg/jwt"
	"github.com/workdocs/leave-engine-go/internal/repository/postgresql"
	activityService "github.com/workdocs/leave-engine-go/internal/service/activity"
	employeeService "github.com/workdocs/leave-engine-go/internal/service/employee"
	leaveService "github.com/workdocs/leave-engine-go/internal/service/leave"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	entitlementRepo := postgresql.NewEntitlementRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	carryOverRepo := postgresql.NewCarryOverRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	activitySvc := activityService.NewActivityService(activityRepo)
	employeeSvc := employeeService.NewService(employeeRepo, activitySvc)
	entitlementSvc := leaveService.NewEntitlementService(db, entitlementRepo, carryOverRepo, employeeRepo)
	requestSvc := leaveService.NewRequestService(db, requestRepo, entitlementRepo, employeeRepo, activitySvc)
	calendarSvc := leaveService.NewCalendarService(requestRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(requestSvc)
	entitlementHandler := appHTTP.NewEntitlementHandler(entitlementSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		jwtService,
		employeeHandler,
		leaveHandler,
		entitlementHandler,
		calendarHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
