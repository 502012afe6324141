package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/joho/godotenv"

	"payrollms/internal/db"
	"payrollms/internal/domain/department"
	"payrollms/internal/domain/employee"
	"payrollms/internal/domain/payroll"
	"payrollms/internal/domain/reports"
	"payrollms/internal/domain/role"
	"payrollms/internal/platform/config"
	authhandler "payrollms/internal/transport/http/handlers/auth"
	corehandler "payrollms/internal/transport/http/handlers/core"
	payrollhandler "payrollms/internal/transport/http/handlers/payroll"
	reportshandler "payrollms/internal/transport/http/handlers/reports"
	"payrollms/internal/transport/http/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.Environment == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payrollms"),
		slog.String("env", cfg.Environment),
	)
	slog.SetDefault(logger)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			logger.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			logger.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	departmentSvc := department.NewService(department.NewStore(pool))
	roleSvc := role.NewService(role.NewStore(pool))
	employeeSvc := employee.NewService(employee.NewStore(pool))
	payrollSvc := payroll.NewService(payroll.NewStore(pool))
	reportsSvc := reports.NewService(reports.NewStore(pool))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(pool, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			corehandler.NewHandler(departmentSvc, roleSvc, employeeSvc).RegisterRoutes(r)
			payrollhandler.NewHandler(payrollSvc).RegisterRoutes(r)
			reportshandler.NewHandler(reportsSvc).RegisterRoutes(r)
		})
	})

	logger.Info("payroll server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
