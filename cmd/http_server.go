package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	internal "github.com/adrianlim/onboarding-tracker/internal"
	"github.com/adrianlim/onboarding-tracker/internal/auth"
	authLocal "github.com/adrianlim/onboarding-tracker/internal/auth/localstore"
	authPostgres "github.com/adrianlim/onboarding-tracker/internal/auth/postgres"
	"github.com/adrianlim/onboarding-tracker/internal/employee"
	employeeLocal "github.com/adrianlim/onboarding-tracker/internal/employee/localstore"
	employeePostgres "github.com/adrianlim/onboarding-tracker/internal/employee/postgres"
	"github.com/adrianlim/onboarding-tracker/internal/onboarding"
	"github.com/adrianlim/onboarding-tracker/internal/task"
	taskLocal "github.com/adrianlim/onboarding-tracker/internal/task/localstore"
	taskPostgres "github.com/adrianlim/onboarding-tracker/internal/task/postgres"
	"github.com/adrianlim/onboarding-tracker/internal/transport/rest"
	"github.com/adrianlim/onboarding-tracker/pkg/localstore"
	"github.com/adrianlim/onboarding-tracker/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
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

// storageBackends holds whichever backend the config selected; exactly one
// of DB/Store is non-nil.
type storageBackends struct {
	DB    *sqlx.DB
	Store *localstore.Store

	Accounts  auth.RepositoryAPI
	Employees employee.Repository
	Tasks     task.Repository
}

type Dependencies struct {
	Config  *internal.Config
	Storage *storageBackends
	Router  *chi.Mux
	Logger  *slog.Logger

	AuthHandler       *auth.Handler
	OnboardingHandler *onboarding.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr, "storage", deps.Config.Storage.Driver)

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
		if deps.Storage.DB != nil {
			if err := deps.Storage.DB.Close(); err != nil {
				slog.Error("Database close error", "error", err)
			}
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
	var sqlDB *sql.DB
	if deps.Storage.DB != nil {
		sqlDB = deps.Storage.DB.DB
	}
	rest.RegisterAllRoutes(deps.Router, sqlDB, deps.Storage.Store, deps.AuthHandler, deps.OnboardingHandler, deps.Config.Server.AllowedOrigins, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	storage, err := initStorage(config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	employeeService := employee.NewService(storage.Employees, lg)
	taskService := task.NewService(storage.Tasks, lg)
	onboardingService := onboarding.NewService(employeeService, taskService, lg)

	tokenGenerator := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(storage.Accounts, employeeService, tokenGenerator)

	return &Dependencies{
		Config:            config,
		Storage:           storage,
		Router:            chi.NewRouter(),
		Logger:            lg,
		AuthHandler:       auth.NewHandler(authService),
		OnboardingHandler: onboarding.NewHandler(onboardingService),
	}, nil
}

// initStorage opens the configured persistence backend and builds the
// repository set on top of it.
func initStorage(cfg *internal.Config) (*storageBackends, error) {
	switch cfg.Storage.Driver {
	case internal.StorageDriverLocal:
		store, err := localstore.Open(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		return &storageBackends{
			Store:     store,
			Accounts:  authLocal.NewAccountRepository(store),
			Employees: employeeLocal.NewEmployeeRepository(store),
			Tasks:     taskLocal.NewTaskRepository(store),
		}, nil

	case internal.StorageDriverPostgres:
		db, err := initDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open gorm over pgx pool: %w", err)
		}
		return &storageBackends{
			DB:        db,
			Accounts:  authPostgres.NewAccountRepository(gormDB),
			Employees: employeePostgres.NewEmployeeRepository(gormDB),
			Tasks:     taskPostgres.NewTaskRepository(gormDB),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
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
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
