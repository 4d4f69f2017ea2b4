package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/hr-payroll/internal"
	"github.com/frahmantamala/hr-payroll/internal/attendance"
	attendancedb "github.com/frahmantamala/hr-payroll/internal/attendance/postgres"
	"github.com/frahmantamala/hr-payroll/internal/auth"
	authdb "github.com/frahmantamala/hr-payroll/internal/auth/postgres"
	"github.com/frahmantamala/hr-payroll/internal/dashboard"
	dashboarddb "github.com/frahmantamala/hr-payroll/internal/dashboard/postgres"
	"github.com/frahmantamala/hr-payroll/internal/employee"
	employeedb "github.com/frahmantamala/hr-payroll/internal/employee/postgres"
	"github.com/frahmantamala/hr-payroll/internal/payroll"
	payrolldb "github.com/frahmantamala/hr-payroll/internal/payroll/postgres"
	"github.com/frahmantamala/hr-payroll/internal/project"
	projectdb "github.com/frahmantamala/hr-payroll/internal/project/postgres"
	"github.com/frahmantamala/hr-payroll/internal/report"
	reportdb "github.com/frahmantamala/hr-payroll/internal/report/postgres"
	"github.com/frahmantamala/hr-payroll/internal/transport/rest"
	"github.com/frahmantamala/hr-payroll/internal/user"
	userdb "github.com/frahmantamala/hr-payroll/internal/user/postgres"
	"github.com/frahmantamala/hr-payroll/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger

	tokenGen := auth.NewJWTTokenGenerator(
		deps.Config.Security.SessionSecret,
		deps.Config.Security.AccessTokenDuration,
	)
	authService := auth.NewService(authdb.NewRepository(deps.GormDB), tokenGen)

	employeeService := employee.NewService(employeedb.NewEmployeeRepository(deps.GormDB), lg)
	attendanceService := attendance.NewService(attendancedb.NewAttendanceRepository(deps.GormDB), lg)
	projectService := project.NewService(projectdb.NewProjectRepository(deps.GormDB), lg)
	payrollService := payroll.NewService(payrolldb.NewPayrollRepository(deps.GormDB), projectService, lg)
	reportService := report.NewService(reportdb.NewReportRepository(deps.GormDB), lg)
	dashboardService := dashboard.NewService(dashboarddb.NewDashboardRepository(deps.GormDB), lg)
	userService := user.NewService(userdb.NewUserRepository(deps.GormDB), deps.Config.Security.BCryptCost, lg)

	handlers := rest.Handlers{
		Auth:       auth.NewHandler(authService),
		Employee:   employee.NewHandler(employeeService),
		Attendance: attendance.NewHandler(attendanceService),
		Project:    project.NewHandler(projectService),
		Payroll:    payroll.NewHandler(payrollService),
		Report:     report.NewHandler(reportService),
		Dashboard:  dashboard.NewHandler(dashboardService),
		User:       user.NewHandler(userService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, lg)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers GORM over the already-open pgx connection pool so the
// repositories and the health check share one pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpg.New(gormpg.Config{Conn: db.DB}), &gorm.Config{})
}
