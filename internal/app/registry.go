package app

import (
	"net/http"

	"github.com/syrene4545/attendance-tracker-sub001/internal/assessment"
	"github.com/syrene4545/attendance-tracker-sub001/internal/attendance"
	"github.com/syrene4545/attendance-tracker-sub001/internal/auth"
	"github.com/syrene4545/attendance-tracker-sub001/internal/bootstrap"
	"github.com/syrene4545/attendance-tracker-sub001/internal/company"
	"github.com/syrene4545/attendance-tracker-sub001/internal/config"
	"github.com/syrene4545/attendance-tracker-sub001/internal/department"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employee"
	"github.com/syrene4545/attendance-tracker-sub001/internal/employeesalary"
	"github.com/syrene4545/attendance-tracker-sub001/internal/leave"
	"github.com/syrene4545/attendance-tracker-sub001/internal/messaging/kafka"
	"github.com/syrene4545/attendance-tracker-sub001/internal/metrics"
	"github.com/syrene4545/attendance-tracker-sub001/internal/middleware"
	"github.com/syrene4545/attendance-tracker-sub001/internal/payroll"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac"
	"github.com/syrene4545/attendance-tracker-sub001/internal/rbac/infra"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/counter"
	"github.com/syrene4545/attendance-tracker-sub001/internal/sop"
	"github.com/syrene4545/attendance-tracker-sub001/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires every module onto router under /api.
func BuildApp(router *gin.Engine, in *Infra, audit bootstrap.AuditLogger, logger *zap.Logger) error {
	cfg := in.Config
	db, gormDB, rdb := in.SQLDB, in.GormDB, in.Redis

	rules, err := config.LoadPayrollRules(cfg.PayrollRulesFile)
	if err != nil {
		return err
	}

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employeeSalaryRepo := employeesalary.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	sopRepo := sop.NewRepository(gormDB)
	assessmentRepo := assessment.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(db, rbacRepo, enforcer, logger)

	// --- Services ---
	authService := auth.NewService(
		userRepo,
		authRepo,
		rbacService,
		auth.TokenConfig{Secret: cfg.JWT.Secret, AccessTTL: cfg.JWT.AccessTTL, RefreshTTL: cfg.JWT.RefreshTTL},
		audit,
		logger,
	)
	userService := user.NewService(userRepo, logger)
	companyService := company.NewService(db, companyRepo, employeeRepo, userRepo, counterRepo, rbacService, outboxRepo, logger)
	departmentService := department.NewService(db, departmentRepo, rdb, logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rbacService, rdb, logger)
	employeeSalaryService := employeesalary.NewService(db, employeeSalaryRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, cfg.Attendance, logger)
	leaveService := leave.NewService(db, leaveRepo, cfg.Leave, logger)
	payrollService := payroll.NewService(db, payrollRepo, employeeSalaryService, rules, outboxRepo, logger)
	sopService := sop.NewService(db, sopRepo, rdb, logger)
	assessmentService := assessment.NewService(db, assessmentRepo, outboxRepo, cfg.Assessment, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.IsProduction(),
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	}, logger)
	userHandler := user.NewHandler(userService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	employeeSalaryHandler := employeesalary.NewHandler(employeeSalaryService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	sopHandler := sop.NewHandler(sopService, logger)
	assessmentHandler := assessment.NewHandler(assessmentService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	router.Use(middleware.RequestID(), middleware.HTTPMetrics())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, rbacService, logger)
		user.RegisterRoutes(api, userHandler, rbacService, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		employeesalary.RegisterRoutes(api, employeeSalaryHandler, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb, logger)
		sop.RegisterRoutes(api, sopHandler, rbacService, logger)
		assessment.RegisterRoutes(api, assessmentHandler, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	logger.Info("modules registered")
	return nil
}
