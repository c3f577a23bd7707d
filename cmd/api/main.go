package main

import (
	"fmt"
	"net/http"

	"github.com/quillhr/hr-backend-go/internal/config"
	appHTTP "github.com/quillhr/hr-backend-go/internal/handler/http"
	"github.com/quillhr/hr-backend-go/internal/pkg/database"
	"github.com/quillhr/hr-backend-go/internal/repository/postgresql"
	dashboardService "github.com/quillhr/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/quillhr/hr-backend-go/internal/service/employee"
	payslipService "github.com/quillhr/hr-backend-go/internal/service/payslip"
	roleService "github.com/quillhr/hr-backend-go/internal/service/role"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	roleRepo := postgresql.NewRoleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	txManager := postgresql.NewTransactionManager(db)

	roleSvc := roleService.NewRoleService(roleRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, roleRepo, txManager)
	payslipSvc := payslipService.NewPayslipService(payslipRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo)

	roleHandler := appHTTP.NewRoleHandler(roleSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		roleHandler,
		employeeHandler,
		payslipHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
